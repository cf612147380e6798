// Package table provides an in-memory table of loosely typed cells.
//
// # Overview
//
// A [Table] is a header row followed by data rows. Each cell is a [Value], a
// tagged union over null, string, integer, float, boolean and date. Cells in
// one column may hold different kinds until [Table.ApplyTypes] coerces them.
//
// # Column identifiers
//
// Operations take a [Column], built with [Index] or [Name]. Name resolution
// picks the first header cell with that text.
//
// # Type inference
//
// [Table.InferTypes] picks, per column, the first of int, float, bool and date
// that every non-null value already is, falling back to string. Dates are
// recognized from strings in YYYY-MM-DD form. [Table.InferTextTypes] also
// parses string content, which suits tables read from CSV.
//
// # Mutation
//
// Setters, [Table.ApplyTypes] and the arithmetic operations mutate the table in
// place and are not atomic: a failure leaves the work done so far. A Table
// has a single owner; there is no locking.
package table
