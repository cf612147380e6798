// Element-wise arithmetic between two columns.

package table

import (
	"fmt"
	"math"
)

// Op is a binary arithmetic operator applied by Arith.
type Op uint8

const (
	// OpAdd is a + b.
	OpAdd Op = iota
	// OpSubtract is a - b.
	OpSubtract
	// OpMultiply is a * b.
	OpMultiply
	// OpDivide is a / b. The result is always a Float.
	OpDivide
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// ParseOp returns the operator named s. Short forms add, sub, mul and div and
// the symbols + - * / are accepted.
func ParseOp(s string) (Op, error) {
	switch s {
	case "add", "+":
		return OpAdd, nil
	case "subtract", "sub", "-":
		return OpSubtract, nil
	case "multiply", "mul", "*":
		return OpMultiply, nil
	case "divide", "div", "/":
		return OpDivide, nil
	}
	return 0, fmt.Errorf("unknown operator %q", s)
}

// Add appends column result holding a + b.
func (t *Table) Add(a, b Column, result string) error {
	return t.Arith(OpAdd, a, b, result)
}

// Subtract appends column result holding a - b.
func (t *Table) Subtract(a, b Column, result string) error {
	return t.Arith(OpSubtract, a, b, result)
}

// Multiply appends column result holding a * b.
func (t *Table) Multiply(a, b Column, result string) error {
	return t.Arith(OpMultiply, a, b, result)
}

// Divide appends column result holding a / b. A zero divisor fails with
// ErrDivideByZero.
func (t *Table) Divide(a, b Column, result string) error {
	return t.Arith(OpDivide, a, b, result)
}

// Arith appends a new column named result computed as a op b for each data
// row.
//
// Operands must be Int, Float or Bool, booleans counting as 0 and 1. Int and
// Bool operands produce an Int, except for OpDivide which always produces a
// Float; any Float operand produces a Float. Integer results that overflow
// int64 fail with ErrOutOfRange.
//
// The header is extended before the rows are visited and rows are extended in
// order. If a row fails, the header keeps the new column and only the rows
// before the failing one carry a result; Validate reports the ragged table.
func (t *Table) Arith(op Op, a, b Column, result string) error {
	if t.hasColumn(result) {
		return fmt.Errorf("column %q already exists: %w", result, ErrSchemaConflict)
	}
	header := t.HeaderRow()
	ia, err := a.resolve(header)
	if err != nil {
		return err
	}
	ib, err := b.resolve(header)
	if err != nil {
		return err
	}
	// Rows may be shared with other tables through Concat or Split, so appends
	// must not reuse spare capacity.
	h := t.rows[0]
	t.rows[0] = append(h[:len(h):len(h)], String(result))
	for i, r := range t.data() {
		if ia >= len(r) || ib >= len(r) {
			return fmt.Errorf("row %d has %d values: %w", i+1, len(r), ErrOutOfRange)
		}
		v, err := apply(op, r[ia], r[ib])
		if err != nil {
			return fmt.Errorf("row %d, %s %s %s: %w", i+1, a, op, b, err)
		}
		t.rows[i+1] = append(r[:len(r):len(r)], v)
	}
	return nil
}

func apply(op Op, x, y Value) (Value, error) {
	fx, okx := x.number()
	fy, oky := y.number()
	if !okx || !oky {
		return Value{}, fmt.Errorf("operands %#v and %#v must be numeric or boolean: %w", x, y, ErrTypeMismatch)
	}
	if op == OpDivide {
		if fy == 0 {
			return Value{}, ErrDivideByZero
		}
		return Float(fx / fy), nil
	}
	ix, okx := x.integer()
	iy, oky := y.integer()
	if okx && oky {
		r, ok := intOp(op, ix, iy)
		if !ok {
			return Value{}, fmt.Errorf("%d %s %d overflows int64: %w", ix, op, iy, ErrOutOfRange)
		}
		return Int(r), nil
	}
	switch op {
	case OpAdd:
		return Float(fx + fy), nil
	case OpSubtract:
		return Float(fx - fy), nil
	case OpMultiply:
		return Float(fx * fy), nil
	}
	return Value{}, fmt.Errorf("unknown operator %s", op)
}

// intOp applies op to two integers, reporting false on int64 overflow.
func intOp(op Op, x, y int64) (int64, bool) {
	switch op {
	case OpAdd:
		r := x + y
		return r, (r > x) == (y > 0)
	case OpSubtract:
		r := x - y
		return r, (r < x) == (y > 0)
	case OpMultiply:
		if x == 0 || y == 0 {
			return 0, true
		}
		r := x * y
		if r/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
			return 0, false
		}
		return r, true
	}
	return 0, false
}
