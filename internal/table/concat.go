package table

import (
	"fmt"
)

// Concat returns a new table with a's header followed by the data rows of a
// then b. Rows are shared with the inputs, not copied. Duplicates are kept.
func Concat(a, b *Table) (*Table, error) {
	if !a.HeaderRow().Equal(b.HeaderRow()) {
		return nil, fmt.Errorf("%v vs %v: %w", a.Header(), b.Header(), ErrHeaderMismatch)
	}
	rows := make([]Row, 0, a.Len()+b.DataLen())
	rows = append(rows, a.rows...)
	rows = append(rows, b.data()...)
	return &Table{rows: rows}, nil
}

// Split cuts t positionally at row n, returning rows [0, n) and [n, Len()).
//
// n must be in [1, Len()). The second table has no header of its own: its
// row 0 is the first data row that followed the cut. Rows are shared with t.
func Split(t *Table, n int) (*Table, *Table, error) {
	if n < 1 || n >= len(t.rows) {
		return nil, nil, fmt.Errorf("split at %d of %d rows: %w", n, len(t.rows), ErrOutOfRange)
	}
	return &Table{rows: t.rows[:n:n]}, &Table{rows: t.rows[n:]}, nil
}
