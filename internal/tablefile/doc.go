// Package tablefile reads and writes tables as files.
//
// # Formats
//
// The extension of a path selects its [Codec]:
//
//   - .csv: comma separated text, every field read back as a string.
//   - .gob: encoding/gob of the cells with their kinds, round-tripping exactly.
//
// A third, write-only format renders one line per row with cells joined by
// " | "; see [WriteReport] and [SaveReport].
//
// # Multiple files
//
// [Load] reads one logical table from several files sharing a header. [Save]
// cuts a table into files of at most maxRows rows named {stem}_partN.{ext}.
// The header counts as the first row of the first file and is not repeated in
// later files, so loading the parts back requires re-attaching it.
package tablefile
