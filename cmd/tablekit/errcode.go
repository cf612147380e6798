package main

import (
	"errors"
	"io/fs"

	"github.com/maruel/tablekit/internal/table"
	"github.com/maruel/tablekit/internal/tablefile"
)

// ErrorCode names a failure class in error messages. Each maps to a distinct
// exit status so scripts can branch on it.
type ErrorCode string

const (
	// ErrCodeUsage is returned for bad command line arguments.
	ErrCodeUsage ErrorCode = "USAGE"
	// ErrCodeNotFound is returned when an input file is missing.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodePermission is returned when a file cannot be read or written.
	ErrCodePermission ErrorCode = "PERMISSION_DENIED"
	// ErrCodeUnsupportedFormat is returned for an unknown file extension.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeMalformed is returned when a file cannot be decoded.
	ErrCodeMalformed ErrorCode = "MALFORMED_DATA"
	// ErrCodeHeaderMismatch is returned when tables disagree on their header.
	ErrCodeHeaderMismatch ErrorCode = "HEADER_MISMATCH"
	// ErrCodeSchemaConflict is returned for a missing or duplicate column.
	ErrCodeSchemaConflict ErrorCode = "SCHEMA_CONFLICT"
	// ErrCodeTypeMismatch is returned when a cell has the wrong kind.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeDivideByZero is returned by arith div on a zero divisor.
	ErrCodeDivideByZero ErrorCode = "DIVIDE_BY_ZERO"
	// ErrCodeOutOfRange is returned for an invalid row count or position.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
	// ErrCodeEmptyTable is returned when a table has no data rows.
	ErrCodeEmptyTable ErrorCode = "EMPTY_TABLE"
	// ErrCodeInternal is everything else.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// errorCodes is checked in order; the first match wins.
var errorCodes = []struct {
	target error
	code   ErrorCode
}{
	{errUsage, ErrCodeUsage},
	{tablefile.ErrNoTables, ErrCodeUsage},
	{fs.ErrNotExist, ErrCodeNotFound},
	{fs.ErrPermission, ErrCodePermission},
	{tablefile.ErrUnsupportedFormat, ErrCodeUnsupportedFormat},
	{tablefile.ErrMalformedData, ErrCodeMalformed},
	{table.ErrHeaderMismatch, ErrCodeHeaderMismatch},
	{table.ErrSchemaConflict, ErrCodeSchemaConflict},
	{table.ErrTypeMismatch, ErrCodeTypeMismatch},
	{table.ErrDivideByZero, ErrCodeDivideByZero},
	{table.ErrOutOfRange, ErrCodeOutOfRange},
	{table.ErrEmptyTable, ErrCodeEmptyTable},
}

// codeOf classifies err.
func codeOf(err error) ErrorCode {
	for _, c := range errorCodes {
		if errors.Is(err, c.target) {
			return c.code
		}
	}
	return ErrCodeInternal
}

var exitStatus = map[ErrorCode]int{
	ErrCodeInternal:          1,
	ErrCodeUsage:             2,
	ErrCodeNotFound:          3,
	ErrCodePermission:        4,
	ErrCodeUnsupportedFormat: 5,
	ErrCodeMalformed:         6,
	ErrCodeHeaderMismatch:    7,
	ErrCodeSchemaConflict:    8,
	ErrCodeTypeMismatch:      9,
	ErrCodeDivideByZero:      10,
	ErrCodeOutOfRange:        11,
	ErrCodeEmptyTable:        12,
}

// ExitStatus returns the process exit status for c. Usage errors exit with 2
// like the flag package.
func (c ErrorCode) ExitStatus() int {
	if s, ok := exitStatus[c]; ok {
		return s
	}
	return 1
}
