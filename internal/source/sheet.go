package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Record is one spreadsheet row keyed by header name
type Record map[string]string

// Get returns the trimmed value of column, or "" when the row has no such cell
func (r Record) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// SheetOptions selects what to read from a workbook
type SheetOptions struct {
	// Sheet name; empty selects the first sheet
	Sheet string
	// Columns to keep; all must be present in the header row
	Columns []string
}

// ReadSheet reads one worksheet of the workbook at path. The first row is
// the header; fully blank rows are skipped.
func ReadSheet(path string, opts SheetOptions) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel %s: %w", path, err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header := DedupeHeader(rows[0])
	if err := checkRequired(header, opts.Columns); err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	keep := make(map[string]bool, len(opts.Columns))
	for _, c := range opts.Columns {
		keep[c] = true
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec := make(Record, len(header))
		for i, name := range header {
			if len(keep) > 0 && !keep[name] {
				continue
			}
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
