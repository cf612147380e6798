package tablefile

import (
	"bufio"
	"io"
	"strings"

	"github.com/maruel/tablekit/internal/table"
)

// reportSep separates cells in the text report.
const reportSep = " | "

// WriteReport writes one line per row with cells joined by " | ".
//
// The report is meant for people and is never read back.
func WriteReport(w io.Writer, t *table.Table) error {
	bw := bufio.NewWriter(w)
	for _, r := range t.Rows() {
		if _, err := bw.WriteString(strings.Join(r.Strings(), reportSep)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
