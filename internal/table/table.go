// Package table implements the in-memory tabular dataset: an ordered set of
// column names plus rows of string cells, with accent-insensitive search and
// pure pagination over it. The column set is unknown at compile time and
// fixed for the lifetime of a load cycle.
package table

import (
	"fmt"

	"github.com/cmardones/rosterbase/internal/common"
)

// Row maps column name to cell value. The empty string represents
// "no value"; there is no null type.
type Row map[string]string

// Table is an ordered sequence of unique column names and rows. Row order is
// insertion order unless changed by DeleteAt.
type Table struct {
	Columns []string
	Rows    []Row
}

// New builds an empty table, rejecting blank or duplicate column names.
func New(columns []string) (*Table, error) {
	if len(columns) == 0 {
		return nil, common.ErrSchema
	}
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("%w: blank column name", common.ErrSchema)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", common.ErrSchema, c)
		}
		seen[c] = struct{}{}
	}
	return &Table{Columns: append([]string(nil), columns...)}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Append adds a row, keeping only known columns and filling missing ones
// with the empty string.
func (t *Table) Append(r Row) {
	row := make(Row, len(t.Columns))
	for _, c := range t.Columns {
		row[c] = r[c]
	}
	t.Rows = append(t.Rows, row)
}

// Cell returns the value at (idx, col). The second result is false when the
// index is out of range or the column does not exist.
func (t *Table) Cell(idx int, col string) (string, bool) {
	if idx < 0 || idx >= len(t.Rows) || !t.HasColumn(col) {
		return "", false
	}
	return t.Rows[idx][col], true
}

// SetCell replaces a single cell value.
func (t *Table) SetCell(idx int, col, value string) error {
	if idx < 0 || idx >= len(t.Rows) {
		return fmt.Errorf("row index %d out of range", idx)
	}
	if !t.HasColumn(col) {
		return fmt.Errorf("unknown column %q", col)
	}
	t.Rows[idx][col] = value
	return nil
}

// DeleteAt removes the row at idx; subsequent rows shift down, so callers
// must not cache indices across a delete.
func (t *Table) DeleteAt(idx int) error {
	if idx < 0 || idx >= len(t.Rows) {
		return fmt.Errorf("row index %d out of range", idx)
	}
	t.Rows = append(t.Rows[:idx], t.Rows[idx+1:]...)
	return nil
}

// Clone returns a deep copy sharing nothing with the receiver.
func (t *Table) Clone() *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	out.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		row := make(Row, len(r))
		for k, v := range r {
			row[k] = v
		}
		out.Rows[i] = row
	}
	return out
}
