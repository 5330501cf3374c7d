package testutil

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// JournalHeaders is the header row of a well-formed journal-entry workbook
var JournalHeaders = []interface{}{"JENumber", "EffectiveDate", "EntryDate", "Debit", "Credit", "Amount"}

// WriteWorkbook saves rows (header row first) to a new single-sheet workbook
// at path and returns path
func WriteWorkbook(t *testing.T, path, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" && sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("failed to rename sheet: %v", err)
		}
	} else {
		sheet = "Sheet1"
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("failed to resolve cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			t.Fatalf("failed to write row %d: %v", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

// WriteJournalWorkbook writes je_samples.xlsx into dir with JournalHeaders
// followed by rows, and returns the file path
func WriteJournalWorkbook(t *testing.T, dir string, rows ...[]interface{}) string {
	t.Helper()

	all := make([][]interface{}, 0, len(rows)+1)
	all = append(all, JournalHeaders)
	all = append(all, rows...)
	return WriteWorkbook(t, filepath.Join(dir, "je_samples.xlsx"), "", all)
}

// JournalRow builds a data row in JournalHeaders order
func JournalRow(jeNumber, effectiveDate, entryDate, debit, credit, amount interface{}) []interface{} {
	return []interface{}{jeNumber, effectiveDate, entryDate, debit, credit, amount}
}
