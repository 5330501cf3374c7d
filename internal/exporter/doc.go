// Package exporter renders an AnalysisReport as the fixed-layout text of
// analysis_report.txt.
//
// Amounts are printed with English thousands separators and two decimal
// places (1,234,567.89). Undefined statistics print as nan and missing date
// bounds as NaT. Counts are plain integers.
//
// Example usage:
//
//	text := exporter.RenderReport(report)
package exporter
