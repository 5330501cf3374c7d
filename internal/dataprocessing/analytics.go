package dataprocessing

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"jereport/internal/errors"
	"jereport/pkg/contracts/domain"
)

// Analyzer derives an AnalysisReport from a loaded journal-entry table
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates a new analyzer. A nil logger uses slog.Default.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger.With(slog.String("component", "analyzer"))}
}

// ComputeStatistics builds typed records from table and summarizes them.
// It fails with a SCHEMA error when a required column is absent.
// Cells that fail numeric or date coercion are treated as missing and
// reported once per column at warn level.
func (a *Analyzer) ComputeStatistics(ctx context.Context, table *Table) (*domain.AnalysisReport, error) {
	records, dropped, err := BuildRecords(table)
	if err != nil {
		return nil, err
	}

	report := Summarize(records)
	report.DroppedValues = dropped

	for _, column := range domain.RequiredColumns {
		if n := dropped[column]; n > 0 {
			a.logger.WarnContext(ctx, "Non-parsable values treated as missing",
				slog.String("column", column),
				slog.Int("count", n))
		}
	}

	a.logger.InfoContext(ctx, "Statistics computed",
		slog.Int("rows", report.TotalRows),
		slog.Int("unique_je_numbers", report.UniqueJENumbers),
		slog.Int("amount_count", report.Amount.Count),
		slog.Int("dropped_values", report.TotalDropped()))

	return &report, nil
}

// BuildRecords converts table rows into JournalEntryRecords. The second
// result maps column name to the number of non-empty cells that could not
// be coerced; columns with none are omitted.
func BuildRecords(table *Table) ([]domain.JournalEntryRecord, map[string]int, error) {
	if table == nil {
		return nil, nil, errors.NewSchemaError(domain.RequiredColumns)
	}
	if missing := table.MissingColumns(domain.RequiredColumns); len(missing) > 0 {
		return nil, nil, errors.NewSchemaError(missing).WithContext("sheet", table.Sheet)
	}

	column := func(name string) []string {
		values, _ := table.Column(name)
		return values
	}

	dropped := make(map[string]int)
	note := func(name string, n int) {
		if n > 0 {
			dropped[name] = n
		}
	}

	effective, n := CoerceDates(column(domain.ColumnEffectiveDate))
	note(domain.ColumnEffectiveDate, n)
	entry, n := CoerceDates(column(domain.ColumnEntryDate))
	note(domain.ColumnEntryDate, n)
	debit, n := CoerceNumeric(column(domain.ColumnDebit))
	note(domain.ColumnDebit, n)
	credit, n := CoerceNumeric(column(domain.ColumnCredit))
	note(domain.ColumnCredit, n)
	amount, n := CoerceNumeric(column(domain.ColumnAmount))
	note(domain.ColumnAmount, n)

	jeNumbers := column(domain.ColumnJENumber)

	records := make([]domain.JournalEntryRecord, len(table.Rows))
	for i := range records {
		records[i] = domain.JournalEntryRecord{
			JENumber:      jeNumbers[i],
			EffectiveDate: effective[i],
			EntryDate:     entry[i],
			Debit:         debit[i],
			Credit:        credit[i],
			Amount:        amount[i],
		}
	}

	return records, dropped, nil
}

// Summarize computes row and distinct counts, date extrema, column sums and
// the Amount distribution. Missing values are skipped per column.
func Summarize(records []domain.JournalEntryRecord) domain.AnalysisReport {
	report := domain.AnalysisReport{
		TotalRows:   len(records),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		TotalAmount: decimal.Zero,
	}

	seen := make(map[string]struct{})
	amounts := make([]float64, 0, len(records))

	for _, r := range records {
		if r.HasJENumber() {
			seen[r.JENumber] = struct{}{}
		}
		if r.EffectiveDate != nil {
			report.EffectiveDate.Include(*r.EffectiveDate)
		}
		if r.EntryDate != nil {
			report.EntryDate.Include(*r.EntryDate)
		}
		if r.Debit.Valid {
			report.TotalDebit = report.TotalDebit.Add(r.Debit.Decimal)
		}
		if r.Credit.Valid {
			report.TotalCredit = report.TotalCredit.Add(r.Credit.Decimal)
		}
		if r.Amount.Valid {
			report.TotalAmount = report.TotalAmount.Add(r.Amount.Decimal)
			amounts = append(amounts, r.Amount.Decimal.InexactFloat64())
		}
	}

	report.UniqueJENumbers = len(seen)
	report.Amount = Describe(amounts)

	return report
}
