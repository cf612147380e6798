// Chunked save across several files.

package tablefile

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/maruel/tablekit/internal/table"
)

// ChunkPath returns the name of chunk n (1-based) for basePath:
// "dir/name.csv" becomes "dir/name_part3.csv".
func ChunkPath(basePath string, n int) string {
	ext := filepath.Ext(basePath)
	return fmt.Sprintf("%s_part%d%s", strings.TrimSuffix(basePath, ext), n, ext)
}

// Save writes t across files of at most maxRows rows each and returns their
// paths in order.
//
// basePath's extension selects the codec and is checked before anything is
// written. Rows are cut positionally with the header counted as the first row
// of the first chunk; later chunks carry no header. Files written before a
// failure are left in place.
func Save(ctx context.Context, t *table.Table, basePath string, maxRows int) ([]string, error) {
	c, err := CodecFor(basePath)
	if err != nil {
		return nil, err
	}
	if maxRows < 1 {
		return nil, fmt.Errorf("max rows must be positive, got %d: %w", maxRows, table.ErrOutOfRange)
	}
	rows := t.Rows()
	var written []string
	for start, n := 0, 1; start < len(rows); start, n = start+maxRows, n+1 {
		end := min(start+maxRows, len(rows))
		p := ChunkPath(basePath, n)
		if err := writeFile(p, table.FromRows(rows[start:end:end]...), c.Encode); err != nil {
			return written, err
		}
		slog.InfoContext(ctx, "Saved table chunk", "path", p, "rows", end-start)
		written = append(written, p)
	}
	return written, nil
}
