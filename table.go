package docscrape

import (
	"fmt"
	"io"
	"strings"
)

// Table is a tabular scrape result: a header row followed by data rows.
// Every row must have as many cells as the header.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable returns an empty Table with the given column names.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// Append adds a data row.
func (t *Table) Append(row ...string) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Validate returns an error if the table has no header or a row whose
// arity differs from the header's.
func (t *Table) Validate() error {
	if len(t.Header) == 0 {
		return Errorf(EINVALID, "table header required")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return Errorf(EINVALID, "row %d has %d cells, want %d", i+1, len(row), len(t.Header))
		}
	}
	return nil
}

// Records returns the header followed by the data rows.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Header)
	records = append(records, t.Rows...)
	return records
}

// WriteRows writes each record on its own line with cells separated by
// single spaces.
func WriteRows(w io.Writer, t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	for _, record := range t.Records() {
		if _, err := fmt.Fprintln(w, strings.Join(record, " ")); err != nil {
			return err
		}
	}
	return nil
}
