package dataprocessing

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"jereport/internal/errors"
)

// Table is a fully materialized worksheet: the trimmed header row and the
// raw cell values of every data row beneath it.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]string
}

// LoadOptions controls which worksheet LoadWorkbook reads
type LoadOptions struct {
	// Sheet names the worksheet to read; empty selects the first sheet.
	Sheet string
}

// LoadWorkbook reads a journal-entry workbook into memory.
// A missing path yields a NOT_FOUND error; a file that exists but cannot be
// decoded as a workbook yields a PARSING error.
func LoadWorkbook(path string, opts LoadOptions) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError(path)
		}
		return nil, errors.NewParsingError("failed to access input file", err).WithContext("path", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParsingError("failed to open workbook", err).WithContext("path", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("Failed to close workbook", slog.String("path", path), slog.String("error", cerr.Error()))
		}
	}()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NewParsingError("workbook contains no sheets", nil).WithContext("path", path)
		}
		sheetName = sheets[0]
	}

	// Raw values keep date serials and unformatted amounts
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read sheet %q", sheetName), err).
			WithContext("path", path)
	}

	table := &Table{Sheet: sheetName}
	if len(rows) == 0 {
		return table, nil
	}

	table.Headers = make([]string, len(rows[0]))
	for i, header := range rows[0] {
		table.Headers[i] = strings.TrimSpace(header)
	}
	table.Rows = rows[1:]

	slog.Debug("Workbook loaded",
		slog.String("path", path),
		slog.String("sheet", sheetName),
		slog.Int("columns", len(table.Headers)),
		slog.Int("rows", len(table.Rows)))

	return table, nil
}

// ColumnIndex returns the position of the first header equal to name, or -1
func (t *Table) ColumnIndex(name string) int {
	for i, header := range t.Headers {
		if header == name {
			return i
		}
	}
	return -1
}

// MissingColumns returns the names in required that have no header
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, name := range required {
		if t.ColumnIndex(name) < 0 {
			missing = append(missing, name)
		}
	}
	return missing
}

// Column returns the trimmed values of the named column, one per data row.
// Rows shorter than the header yield empty values.
func (t *Table) Column(name string) ([]string, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}

	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = strings.TrimSpace(row[idx])
		}
	}
	return values, true
}
