// Package shared holds helpers used across the jereport packages.
//
// # Test Utilities
//
// The testutil subpackage provides:
//
//	- BufferedSlogHandler for asserting on structured log records
//	- Workbook builders that write journal-entry .xlsx fixtures with excelize
//
// It should NOT contain business logic; statistics and rendering live in
// dataprocessing and exporter.
package shared
