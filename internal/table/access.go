// Row and column accessors.

package table

import (
	"fmt"
)

// RowsByPosition returns rows by position, the header being row 0.
//
// A negative stop returns the single row at start. Otherwise the half-open
// range [start, stop) is returned. Returned rows alias the table unless clone
// is set.
func (t *Table) RowsByPosition(start, stop int, clone bool) ([]Row, error) {
	var rows []Row
	if stop < 0 {
		if start < 0 || start >= len(t.rows) {
			return nil, fmt.Errorf("row %d of %d: %w", start, len(t.rows), ErrOutOfRange)
		}
		rows = t.rows[start : start+1 : start+1]
	} else {
		if start < 0 || start > stop || stop > len(t.rows) {
			return nil, fmt.Errorf("rows [%d, %d) of %d: %w", start, stop, len(t.rows), ErrOutOfRange)
		}
		rows = t.rows[start:stop:stop]
	}
	if clone {
		return cloneRows(rows), nil
	}
	return rows, nil
}

// RowsByKey returns the data rows whose first cell equals one of keys, in
// table order.
func (t *Table) RowsByKey(keys []Value, clone bool) []Row {
	if len(keys) == 0 {
		return nil
	}
	var rows []Row
	for _, r := range t.data() {
		if len(r) == 0 {
			continue
		}
		for _, k := range keys {
			if r[0].Equal(k) {
				rows = append(rows, r)
				break
			}
		}
	}
	if clone {
		return cloneRows(rows)
	}
	return rows
}

// Values returns the data-row values of col in row order.
func (t *Table) Values(col Column) ([]Value, error) {
	idx, err := col.resolve(t.HeaderRow())
	if err != nil {
		return nil, err
	}
	data := t.data()
	out := make([]Value, len(data))
	for i, r := range data {
		if idx >= len(r) {
			return nil, fmt.Errorf("row %d has %d values: %w", i+1, len(r), ErrOutOfRange)
		}
		out[i] = r[idx]
	}
	return out, nil
}

// Value returns the value of col in the first data row.
func (t *Table) Value(col Column) (Value, error) {
	idx, err := col.resolve(t.HeaderRow())
	if err != nil {
		return Value{}, err
	}
	if t.DataLen() == 0 {
		return Value{}, ErrEmptyTable
	}
	if r := t.rows[1]; idx >= len(r) {
		return Value{}, fmt.Errorf("row 1 has %d values: %w", len(r), ErrOutOfRange)
	}
	return t.rows[1][idx], nil
}

// SetValues overwrites col positionally. values must have one entry per data
// row.
func (t *Table) SetValues(values []Value, col Column) error {
	idx, err := col.resolve(t.HeaderRow())
	if err != nil {
		return err
	}
	data := t.data()
	if len(values) != len(data) {
		return fmt.Errorf("got %d values for %d rows: %w", len(values), len(data), ErrOutOfRange)
	}
	for i, r := range data {
		if idx >= len(r) {
			return fmt.Errorf("row %d has %d values: %w", i+1, len(r), ErrOutOfRange)
		}
	}
	for i, r := range data {
		r[idx] = values[i]
	}
	return nil
}

// SetValue overwrites col in the first data row.
func (t *Table) SetValue(v Value, col Column) error {
	idx, err := col.resolve(t.HeaderRow())
	if err != nil {
		return err
	}
	if t.DataLen() == 0 {
		return ErrEmptyTable
	}
	if r := t.rows[1]; idx >= len(r) {
		return fmt.Errorf("row 1 has %d values: %w", len(r), ErrOutOfRange)
	}
	t.rows[1][idx] = v
	return nil
}

func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}
