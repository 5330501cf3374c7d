package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange holds the extrema of a date column. Both ends are nil when
// every value in the column is missing.
type DateRange struct {
	Min *time.Time `json:"min,omitempty"`
	Max *time.Time `json:"max,omitempty"`
}

// Empty reports whether no date contributed to the range
func (d DateRange) Empty() bool {
	return d.Min == nil || d.Max == nil
}

// Include widens the range to cover t
func (d *DateRange) Include(t time.Time) {
	if d.Min == nil || t.Before(*d.Min) {
		v := t
		d.Min = &v
	}
	if d.Max == nil || t.After(*d.Max) {
		v := t
		d.Max = &v
	}
}

// DistributionSummary is the eight-figure summary of a numeric column.
// Every figure except Count is NaN when Count is zero; Std is NaN when
// Count is below two.
type DistributionSummary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	P25   float64 `json:"p25"`
	P50   float64 `json:"p50"`
	P75   float64 `json:"p75"`
	Max   float64 `json:"max"`
}

// AnalysisReport is derived once from the full set of records and never mutated
type AnalysisReport struct {
	TotalRows       int                 `json:"total_rows"`
	UniqueJENumbers int                 `json:"unique_je_numbers"`
	EffectiveDate   DateRange           `json:"effective_date"`
	EntryDate       DateRange           `json:"entry_date"`
	TotalDebit      decimal.Decimal     `json:"total_debit"`
	TotalCredit     decimal.Decimal     `json:"total_credit"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Amount          DistributionSummary `json:"amount"`

	// DroppedValues counts, per column, the non-empty cells that could not
	// be coerced and were treated as missing.
	DroppedValues map[string]int `json:"dropped_values,omitempty"`
}

// TotalDropped returns the number of coerced-away cells across all columns
func (r *AnalysisReport) TotalDropped() int {
	total := 0
	for _, n := range r.DroppedValues {
		total += n
	}
	return total
}
