package table

import (
	"fmt"
	"slices"
)

// Table is a header row followed by data rows.
//
// Rows are stored positionally: row 0 is the header and rows 1 through Len()-1
// hold data. Accessors return slices sharing storage with the table unless a
// copy is requested. A Table is not safe for concurrent mutation.
type Table struct {
	rows []Row
}

// New returns a table with the given header and no data.
func New(header ...string) *Table {
	h := make(Row, len(header))
	for i, name := range header {
		h[i] = String(name)
	}
	return &Table{rows: []Row{h}}
}

// FromRows returns a table owning rows. The first row is the header.
//
// Row lengths are not checked; call Validate when the source is untrusted.
func FromRows(rows ...Row) *Table {
	return &Table{rows: rows}
}

// Len returns the number of rows including the header.
func (t *Table) Len() int {
	return len(t.rows)
}

// DataLen returns the number of data rows.
func (t *Table) DataLen() int {
	if len(t.rows) == 0 {
		return 0
	}
	return len(t.rows) - 1
}

// Rows returns every row, header included. The slice aliases the table.
func (t *Table) Rows() []Row {
	return t.rows
}

// HeaderRow returns row 0, or nil for a table without rows.
func (t *Table) HeaderRow() Row {
	if len(t.rows) == 0 {
		return nil
	}
	return t.rows[0]
}

// Header returns the column names.
func (t *Table) Header() []string {
	return t.HeaderRow().Strings()
}

// data returns the data rows, aliasing the table.
func (t *Table) data() []Row {
	if len(t.rows) == 0 {
		return nil
	}
	return t.rows[1:]
}

// AppendRow appends a data row. On a table without rows it becomes the header.
func (t *Table) AppendRow(values ...Value) error {
	if len(t.rows) != 0 && len(values) != len(t.rows[0]) {
		return fmt.Errorf("row has %d values, header has %d: %w", len(values), len(t.rows[0]), ErrOutOfRange)
	}
	t.rows = append(t.rows, Row(values))
	return nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r.Clone()
	}
	return &Table{rows: rows}
}

// Equal reports whether both tables hold equal rows in the same order.
func (t *Table) Equal(o *Table) bool {
	return slices.EqualFunc(t.rows, o.rows, Row.Equal)
}

// Validate checks that every row has the header's length.
func (t *Table) Validate() error {
	h := t.HeaderRow()
	for i, r := range t.data() {
		if len(r) != len(h) {
			return fmt.Errorf("row %d has %d values, header has %d: %w", i+1, len(r), len(h), ErrOutOfRange)
		}
	}
	return nil
}

// hasColumn reports whether name is already a header cell.
func (t *Table) hasColumn(name string) bool {
	for _, v := range t.HeaderRow() {
		if v.String() == name {
			return true
		}
	}
	return false
}
