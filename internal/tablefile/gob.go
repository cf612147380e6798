// Binary encoding preserving cell kinds.

package tablefile

import (
	"encoding/gob"
	"fmt"
	"io"
	"time"

	"github.com/maruel/tablekit/internal/table"
)

// gobVersion is bumped when wireTable changes incompatibly.
const gobVersion = 1

// wireTable is the gob form of a table. Zero fields of wireCell are not
// transmitted by gob, so each cell only costs its kind and payload.
type wireTable struct {
	Version int
	Rows    [][]wireCell
}

type wireCell struct {
	K table.Kind
	S string
	I int64
	F float64
	B bool
	T time.Time
}

type gobCodec struct{}

func (gobCodec) Ext() string { return ".gob" }

func (gobCodec) Decode(r io.Reader) (*table.Table, error) {
	var w wireTable
	if err := gob.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	if w.Version != gobVersion {
		return nil, fmt.Errorf("%w: unsupported gob version %d", ErrMalformedData, w.Version)
	}
	rows := make([]table.Row, len(w.Rows))
	for i, wr := range w.Rows {
		row := make(table.Row, len(wr))
		for j, c := range wr {
			v, err := c.value()
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %d: %w", ErrMalformedData, i, j, err)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return table.FromRows(rows...), nil
}

func (gobCodec) Encode(w io.Writer, t *table.Table) error {
	wt := wireTable{Version: gobVersion, Rows: make([][]wireCell, t.Len())}
	for i, r := range t.Rows() {
		wr := make([]wireCell, len(r))
		for j, v := range r {
			wr[j] = toWire(v)
		}
		wt.Rows[i] = wr
	}
	return gob.NewEncoder(w).Encode(&wt)
}

func toWire(v table.Value) wireCell {
	c := wireCell{K: v.Kind()}
	switch v.Kind() {
	case table.KindString:
		c.S, _ = v.Str()
	case table.KindInt:
		c.I, _ = v.Int()
	case table.KindFloat:
		c.F, _ = v.Float()
	case table.KindBool:
		c.B, _ = v.Bool()
	case table.KindDate:
		c.T, _ = v.Date()
	case table.KindNull:
	}
	return c
}

func (c *wireCell) value() (table.Value, error) {
	switch c.K {
	case table.KindNull:
		return table.Null(), nil
	case table.KindString:
		return table.String(c.S), nil
	case table.KindInt:
		return table.Int(c.I), nil
	case table.KindFloat:
		return table.Float(c.F), nil
	case table.KindBool:
		return table.Bool(c.B), nil
	case table.KindDate:
		return table.Date(c.T), nil
	default:
		return table.Value{}, fmt.Errorf("unknown kind %d", c.K)
	}
}
