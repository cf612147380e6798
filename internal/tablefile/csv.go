package tablefile

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/maruel/tablekit/internal/table"
)

type csvCodec struct{}

func (csvCodec) Ext() string { return ".csv" }

// Decode reads every record as a row of strings.
//
// Records may have different lengths so that chunk files, which lack a header
// of their own, still load.
func (csvCodec) Decode(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var rows []table.Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
		}
		row := make(table.Row, len(rec))
		for i, field := range rec {
			row[i] = table.String(field)
		}
		rows = append(rows, row)
	}
	return table.FromRows(rows...), nil
}

// Encode writes each cell in its text form. Null cells become empty fields.
//
// A row made of a single empty field is written as "" so that it does not
// turn into a blank line, which readers skip.
func (csvCodec) Encode(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	for _, r := range t.Rows() {
		rec := r.Strings()
		if len(rec) == 1 && rec[0] == "" {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\"\"\n"); err != nil {
				return err
			}
			continue
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
