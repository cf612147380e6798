package table

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaConflict is returned when a result column already exists or a
	// source column is missing.
	ErrSchemaConflict = errors.New("schema conflict")
	// ErrTypeMismatch is returned when a value has the wrong kind for an
	// operation or cannot be converted to the requested kind.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrDivideByZero is returned by Divide when a divisor is zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrOutOfRange is returned for row or column positions outside the table.
	ErrOutOfRange = errors.New("out of range")
	// ErrEmptyTable is returned when an operation needs at least one data row.
	ErrEmptyTable = errors.New("table has no data")
	// ErrHeaderMismatch is returned when two tables do not share a header.
	ErrHeaderMismatch = errors.New("headers do not match")
)

// ConversionError reports a cell that could not be coerced to a kind.
type ConversionError struct {
	// Row is the position of the row in the table, the header being row 0.
	Row    int
	Column Column
	Value  Value
	Kind   Kind
	// Err is the underlying parse error, if any.
	Err error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %#v at row %d, column %s to %s", e.Value, e.Row, e.Column, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrTypeMismatch and the parse error.
func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTypeMismatch}
	}
	return []error{ErrTypeMismatch, e.Err}
}
