// Package table provides the in-memory tabular structure shared by the
// reconciliation engine and the final-grade calculator, plus readers and
// writers for the two file formats the tool consumes: CSV gradebook exports
// and XLSX progress exports. Cell values are kept as raw strings; numeric
// interpretation happens at the point of use.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// Table is an ordered header row plus string-typed body rows. Row indexes
// used throughout this module refer to body rows; the header is not counted.
type Table struct {
	Headers []string
	Rows    [][]string
}

// New builds an empty table with the given headers.
func New(headers ...string) *Table {
	return &Table{Headers: headers}
}

// NumRows returns the number of body rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// ColumnIndex returns the index of the named header, or false if absent.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, h := range t.Headers {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the value at (row, col). Out-of-range access is a programming
// error and panics like a slice access would.
func (t *Table) Cell(row, col int) string {
	return t.Rows[row][col]
}

// SetCell overwrites the value at (row, col).
func (t *Table) SetCell(row, col int, val string) {
	t.Rows[row][col] = val
}

// Column returns all body-row values of the named column, in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, fmt.Errorf("table has no column %q", name)
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// AppendRow adds a body row, padding or truncating it to header width.
func (t *Table) AppendRow(values ...string) {
	t.Rows = append(t.Rows, pad(values, len(t.Headers)))
}

// ReadCSV parses CSV data into a table. The first record is the header; body
// records shorter than the header are padded with empty strings so that every
// row is addressable at full width.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: no header row")
	}
	t := &Table{Headers: records[0]}
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, pad(rec, len(t.Headers)))
	}
	return t, nil
}

// LoadCSV reads a CSV file from disk.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}

// WriteCSV serializes the table, header first.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the table to a CSV file on disk.
func (t *Table) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadXLSX loads the first sheet of an XLSX workbook into a table. The
// practice-platform progress export is a single-sheet workbook whose first
// row is the header.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: read sheet %q: %w", path, sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: sheet %q has no header row", path, sheets[0])
	}
	t := &Table{Headers: rows[0]}
	for _, rec := range rows[1:] {
		t.Rows = append(t.Rows, pad(rec, len(t.Headers)))
	}
	return t, nil
}

func pad(rec []string, width int) []string {
	out := make([]string, width)
	copy(out, rec)
	return out
}
