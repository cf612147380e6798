package table

import (
	"fmt"
	"strconv"
)

// Column identifies a column either by position or by header name.
//
// The zero Column is the first column.
type Column struct {
	name   string
	index  int
	byName bool
}

// Index returns a Column identified by its 0-based position.
func Index(i int) Column { return Column{index: i} }

// Name returns a Column identified by header name. The first header cell equal
// to name wins.
func Name(name string) Column { return Column{name: name, byName: true} }

// ByName reports whether c was created with Name.
func (c Column) ByName() bool { return c.byName }

func (c Column) String() string {
	if c.byName {
		return strconv.Quote(c.name)
	}
	return strconv.Itoa(c.index)
}

// resolve returns the position of c in header.
func (c Column) resolve(header Row) (int, error) {
	if !c.byName {
		if c.index < 0 || c.index >= len(header) {
			return 0, fmt.Errorf("column %d of %d: %w", c.index, len(header), ErrOutOfRange)
		}
		return c.index, nil
	}
	for i, v := range header {
		if v.String() == c.name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found: %w", c.name, ErrSchemaConflict)
}
