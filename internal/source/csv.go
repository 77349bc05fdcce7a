// Package source reads the tabular inputs of the loaders (CSV files and
// spreadsheets) into ordered sequences of named-field records.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/charmap"
)

// ErrMissingColumn is returned when a required column is absent from the header
var ErrMissingColumn = errors.New("missing column")

// CSVOptions controls how a delimited file is read
type CSVOptions struct {
	// SkipLines lists physical line indexes to drop; 0 is the header line.
	// The team stats export repeats its header on line 1.
	SkipLines []int
	// Latin1 decodes the file as ISO-8859-1 instead of UTF-8
	Latin1 bool
	// Required columns must appear in the (renamed) header
	Required []string
}

// ReadCSV decodes the file at path into a slice of T using gocsv struct tags
func ReadCSV[T any](path string, opts CSVOptions) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := DecodeCSV[T](f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}

// DecodeCSV decodes CSV content from r into a slice of T
func DecodeCSV[T any](r io.Reader, opts CSVOptions) ([]T, error) {
	if opts.Latin1 {
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	tr := &tableReader{r: cr, required: opts.Required, skip: make(map[int]bool, len(opts.SkipLines))}
	for _, line := range opts.SkipLines {
		tr.skip[line] = true
	}

	var out []T
	if err := gocsv.UnmarshalCSV(tr, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteCSV writes rows to path with a header taken from the gocsv tags of T
func WriteCSV[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// tableReader adapts csv.Reader for gocsv: it renames repeated header
// cells, enforces required columns and drops skipped lines.
type tableReader struct {
	r        *csv.Reader
	skip     map[int]bool
	required []string
	line     int
}

func (t *tableReader) Read() ([]string, error) {
	for {
		record, err := t.r.Read()
		if err != nil {
			return nil, err
		}
		line := t.line
		t.line++

		if line == 0 {
			header := DedupeHeader(record)
			if err := checkRequired(header, t.required); err != nil {
				return nil, err
			}
			return header, nil
		}
		if t.skip[line] {
			continue
		}
		return record, nil
	}
}

func (t *tableReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := t.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// DedupeHeader trims header cells and renames repeats the way pandas does:
// the second "Pct" becomes "Pct.1", the third "Pct.2".
func DedupeHeader(header []string) []string {
	out := make([]string, len(header))
	counts := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if n := counts[h]; n > 0 {
			out[i] = h + "." + strconv.Itoa(n)
		} else {
			out[i] = h
		}
		counts[h]++
	}
	return out
}

func checkRequired(header, required []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, col := range required {
		if !present[col] {
			return fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	return nil
}
