// Package dataprocessing loads journal-entry workbooks and computes the
// summary statistics of the analysis report.
//
// # Architecture
//
// The package is organized into three components:
//
//  1. Parser: reads one sheet of an .xlsx workbook into a header-addressed Table
//  2. Coercion: converts raw cells to decimals and timestamps, counting cells that fail
//  3. Analytics: builds typed records and summarizes them into a domain.AnalysisReport
//
// # Usage
//
//	table, err := dataprocessing.LoadWorkbook("je_samples.xlsx", dataprocessing.LoadOptions{})
//	if err != nil {
//	    return err
//	}
//
//	report, err := dataprocessing.NewAnalyzer(logger).ComputeStatistics(ctx, table)
//
// # Data Flow
//
//	Excel File → Table → JournalEntryRecords → AnalysisReport
//
// # Missing Values
//
// Empty cells are missing. Non-empty cells that cannot be coerced are also
// treated as missing; their per-column counts are kept in
// AnalysisReport.DroppedValues and logged at warn level.
//
// Sums are exact decimal sums. The Amount distribution uses linear
// interpolation between order statistics for quartiles and the sample
// (n-1) standard deviation.
package dataprocessing
