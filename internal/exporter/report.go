package exporter

import (
	"fmt"
	"strings"

	"jereport/pkg/contracts/domain"
)

// ReportTitle is the first line of every rendered report
const ReportTitle = "JE Samples Analysis Report"

// RenderReport renders report in the fixed text layout of analysis_report.txt.
// The result always ends with a newline and depends only on report.
func RenderReport(report *domain.AnalysisReport) string {
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("%s", ReportTitle)
	line("%s", strings.Repeat("=", len(ReportTitle)))
	line("")
	line("Total Row Count: %s", formatCount(report.TotalRows))
	line("Unique JE Numbers: %s", formatCount(report.UniqueJENumbers))
	line("")
	line("Date Ranges:")
	line("  EffectiveDate: %s to %s", formatDate(report.EffectiveDate.Min), formatDate(report.EffectiveDate.Max))
	line("  EntryDate:     %s to %s", formatDate(report.EntryDate.Min), formatDate(report.EntryDate.Max))
	line("")
	line("Financial Statistics:")
	line("  Total Debit:   %s", formatDecimal(report.TotalDebit))
	line("  Total Credit:  %s", formatDecimal(report.TotalCredit))
	line("  Total Amount:  %s", formatDecimal(report.TotalAmount))
	line("")

	s := report.Amount
	line("Amount Column Statistics:")
	line("  Count: %s", formatCount(s.Count))
	line("  Mean:  %s", formatAmount(s.Mean))
	line("  Std:   %s", formatAmount(s.Std))
	line("  Min:   %s", formatAmount(s.Min))
	line("  25%%:   %s", formatAmount(s.P25))
	line("  50%%:   %s", formatAmount(s.P50))
	line("  75%%:   %s", formatAmount(s.P75))
	line("  Max:   %s", formatAmount(s.Max))

	return b.String()
}
