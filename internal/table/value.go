// Defines the Value tagged union stored in table cells.

package table

import (
	"fmt"
	"strconv"
	"time"
)

// Kind is the runtime kind of a cell value.
type Kind uint8

const (
	// KindNull is an absent value.
	KindNull Kind = iota
	// KindString is a text value.
	KindString
	// KindInt is a 64 bit signed integer.
	KindInt
	// KindFloat is a 64 bit float.
	KindFloat
	// KindBool is a boolean.
	KindBool
	// KindDate is a calendar day.
	KindDate
)

// DateLayout is the only accepted textual date form.
const DateLayout = "2006-01-02"

var kindNames = [...]string{
	KindNull:   "null",
	KindString: "string",
	KindInt:    "int",
	KindFloat:  "float",
	KindBool:   "bool",
	KindDate:   "date",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the Kind named s, as printed by Kind.String.
//
// "integer", "float64", "boolean", "text" and "str" are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "int", "integer", "int64":
		return KindInt, nil
	case "float", "float64", "number":
		return KindFloat, nil
	case "bool", "boolean":
		return KindBool, nil
	case "date":
		return KindDate, nil
	case "string", "str", "text":
		return KindString, nil
	case "null":
		return KindNull, nil
	}
	return KindNull, fmt.Errorf("unknown kind %q", s)
}

// Value is a single table cell.
//
// The zero Value is null. Only the payload field matching kind is meaningful.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
	t    time.Time
}

// Null returns the null value.
func Null() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Date returns a date value. The time of day and location are discarded.
func Date(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: KindDate, t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Of converts a Go value to a Value.
//
// Supported types are nil, string, all integer types, float32, float64, bool,
// time.Time and Value itself. A fmt.Stringer becomes a string; anything else
// becomes null.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Int(int64(x)) //nolint:gosec // Wraps like a C cast.
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case bool:
		return Bool(x)
	case time.Time:
		return Date(x)
	case interface{ String() string }:
		return String(x.String())
	default:
		return Null()
	}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload and whether v is a string.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Int returns the integer payload and whether v is an integer.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the float payload and whether v is a float.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Bool returns the boolean payload and whether v is a boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Date returns the date payload and whether v is a date.
func (v Value) Date() (time.Time, bool) { return v.t, v.kind == KindDate }

// Equal reports whether v and o have the same kind and payload.
//
// Values of different kinds are never equal, so Int(1) != Float(1).
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	case KindDate:
		return v.t.Equal(o.t)
	}
	return false
}

// String returns the canonical text form of v. Null renders as "".
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return v.t.Format(DateLayout)
	default:
		return ""
	}
}

// GoString makes %#v output readable in test failures.
func (v Value) GoString() string {
	if v.kind == KindString {
		return strconv.Quote(v.s)
	}
	if v.kind == KindNull {
		return "null"
	}
	return v.kind.String() + "(" + v.String() + ")"
}

// number returns v as a float64 for arithmetic, with booleans as 0/1.
func (v Value) number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// integer returns v as an int64 when it is an Int or a Bool.
func (v Value) integer() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Row is one table row.
type Row []Value

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	c := make(Row, len(r))
	copy(c, r)
	return c
}

// Equal reports whether both rows have the same length and equal cells.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if !r[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Strings returns the text form of every cell.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.String()
	}
	return out
}

// RowOf builds a Row from Go values using Of.
func RowOf(values ...any) Row {
	r := make(Row, len(values))
	for i, v := range values {
		r[i] = Of(v)
	}
	return r
}
