// Column type inference and in-place coercion.

package table

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ColumnTypes maps columns to kinds, preserving insertion order.
type ColumnTypes struct {
	m *orderedmap.OrderedMap[Column, Kind]
}

// NewColumnTypes returns an empty mapping.
func NewColumnTypes() *ColumnTypes {
	return &ColumnTypes{m: orderedmap.New[Column, Kind]()}
}

// Set assigns kind k to col. A column set twice keeps its first position.
func (c *ColumnTypes) Set(col Column, k Kind) *ColumnTypes {
	c.m.Set(col, k)
	return c
}

// Get returns the kind assigned to col.
func (c *ColumnTypes) Get(col Column) (Kind, bool) {
	return c.m.Get(col)
}

// Len returns the number of assigned columns.
func (c *ColumnTypes) Len() int {
	return c.m.Len()
}

// All iterates over the mapping in insertion order.
func (c *ColumnTypes) All() iter.Seq2[Column, Kind] {
	return func(yield func(Column, Kind) bool) {
		for p := c.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// String renders the mapping as {col: kind, ...}.
func (c *ColumnTypes) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for col, k := range c.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(col.String())
		b.WriteString(": ")
		b.WriteString(k.String())
	}
	b.WriteByte('}')
	return b.String()
}

// inferOrder is the priority in which candidate kinds are tried. String is the
// fallback and always matches.
var inferOrder = [...]Kind{KindInt, KindFloat, KindBool, KindDate}

// InferTypes returns the most specific kind of every column, judged on the
// runtime kind of the non-null data values.
//
// Int, Float and Bool are disjoint: a column of strings holding digits is not
// an Int column. Only the Date check looks at string content. A column without
// any non-null value is a String column. Keys are header names when byName is
// set, positions otherwise.
func (t *Table) InferTypes(byName bool) *ColumnTypes {
	return t.infer(byName, matchesKind)
}

// InferTextTypes is like InferTypes but also accepts string cells whose content
// parses as the candidate kind. Use it on tables read from text files.
func (t *Table) InferTextTypes(byName bool) *ColumnTypes {
	return t.infer(byName, matchesText)
}

func (t *Table) infer(byName bool, match func(Value, Kind) bool) *ColumnTypes {
	types := NewColumnTypes()
	header := t.HeaderRow()
	data := t.data()
	for i, h := range header {
		col := Index(i)
		if byName {
			col = Name(h.String())
		}
		if _, ok := types.Get(col); ok {
			// Duplicate header name: the first column owns it.
			continue
		}
		types.Set(col, inferColumn(data, i, match))
	}
	return types
}

func inferColumn(data []Row, idx int, match func(Value, Kind) bool) Kind {
	seen := false
	for _, r := range data {
		if idx < len(r) && !r[idx].IsNull() {
			seen = true
			break
		}
	}
	if !seen {
		return KindString
	}
	for _, k := range inferOrder {
		ok := true
		for _, r := range data {
			if idx >= len(r) || r[idx].IsNull() {
				continue
			}
			if !match(r[idx], k) {
				ok = false
				break
			}
		}
		if ok {
			return k
		}
	}
	return KindString
}

func matchesKind(v Value, k Kind) bool {
	if k == KindDate && v.kind == KindString {
		return isDate(v.s)
	}
	return v.kind == k
}

func matchesText(v Value, k Kind) bool {
	if v.kind != KindString {
		return matchesKind(v, k)
	}
	s := strings.TrimSpace(v.s)
	var err error
	switch k {
	case KindInt:
		_, err = strconv.ParseInt(s, 10, 64)
	case KindFloat:
		_, err = strconv.ParseFloat(s, 64)
	case KindBool:
		_, err = strconv.ParseBool(s)
	case KindDate:
		return isDate(v.s)
	default:
		return k == KindString
	}
	return err == nil
}

func isDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ApplyTypes converts every data cell of each mapped column to its kind, in
// mapping order. Null cells stay null.
//
// The conversion is not transactional: on failure, cells converted before the
// offending one keep their new value. The returned error is a
// *ConversionError for unconvertible cells.
func (t *Table) ApplyTypes(types *ColumnTypes) error {
	header := t.HeaderRow()
	for col, k := range types.All() {
		idx, err := col.resolve(header)
		if err != nil {
			return err
		}
		for i, r := range t.data() {
			if idx >= len(r) {
				return fmt.Errorf("row %d has %d values: %w", i+1, len(r), ErrOutOfRange)
			}
			v, err := convert(r[idx], k)
			if err != nil {
				return &ConversionError{Row: i + 1, Column: col, Value: r[idx], Kind: k, Err: err}
			}
			r[idx] = v
		}
	}
	return nil
}

var errNoConversion = errors.New("no conversion between kinds")

// convert returns v converted to kind k with each kind's canonical
// conversion: numeric and boolean parsing from strings, strict YYYY-MM-DD date
// parsing, and Value.String for strings. Null converts to null.
func convert(v Value, k Kind) (Value, error) {
	if v.kind == KindNull || v.kind == k {
		return v, nil
	}
	switch k {
	case KindString:
		return String(v.String()), nil
	case KindInt:
		switch v.kind {
		case KindFloat:
			if math.IsNaN(v.f) || math.IsInf(v.f, 0) || v.f < math.MinInt64 || v.f >= math.MaxInt64 {
				return Value{}, fmt.Errorf("%v does not fit an integer", v.f)
			}
			return Int(int64(v.f)), nil
		case KindBool:
			i, _ := v.integer()
			return Int(i), nil
		case KindString:
			i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
			if err != nil {
				return Value{}, err
			}
			return Int(i), nil
		}
	case KindFloat:
		if f, ok := v.number(); ok {
			return Float(f), nil
		}
		if v.kind == KindString {
			f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
			if err != nil {
				return Value{}, err
			}
			return Float(f), nil
		}
	case KindBool:
		if f, ok := v.number(); ok {
			return Bool(f != 0), nil
		}
		if v.kind == KindString {
			b, err := strconv.ParseBool(strings.TrimSpace(v.s))
			if err != nil {
				return Value{}, err
			}
			return Bool(b), nil
		}
	case KindDate:
		if v.kind == KindString {
			d, err := time.Parse(DateLayout, v.s)
			if err != nil {
				return Value{}, err
			}
			return Date(d), nil
		}
	}
	return Value{}, errNoConversion
}
