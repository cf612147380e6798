// Single file read and write with descriptive errors.

package tablefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/maruel/tablekit/internal/table"
)

// ReadFile decodes the table stored at path with the codec matching its
// extension.
//
// A missing file wraps fs.ErrNotExist, a permission failure fs.ErrPermission
// and a decoding failure ErrMalformedData.
func ReadFile(path string) (*table.Table, error) {
	c, err := CodecFor(path)
	if err != nil {
		return nil, err
	}
	return readFile(path, c)
}

func readFile(path string, c Codec) (*table.Table, error) {
	f, err := os.Open(path) //nolint:gosec // G304: reading user supplied paths is the point.
	if err != nil {
		return nil, openError(path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	t, err := c.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return t, nil
}

func openError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("file %s not found: %w", path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("no read access to %s: %w", path, err)
	default:
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
}

// SaveCSV writes t to path as CSV.
func SaveCSV(path string, t *table.Table) error {
	return writeFile(path, t, CSV.Encode)
}

// SaveGob writes t to path with the gob codec.
func SaveGob(path string, t *table.Table) error {
	return writeFile(path, t, Gob.Encode)
}

// SaveReport writes t to path as a " | " separated text report.
func SaveReport(path string, t *table.Table) error {
	return writeFile(path, t, WriteReport)
}

// SaveFile writes t to path, picking the format from the extension: .csv, .gob
// or .txt for the text report.
func SaveFile(path string, t *table.Table) error {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return SaveReport(path, t)
	}
	c, err := CodecFor(path)
	if err != nil {
		return err
	}
	return writeFile(path, t, c.Encode)
}

// writeFile creates or truncates path and encodes t into it. The file is
// closed on every path; a close failure is reported when nothing else failed.
func writeFile(path string, t *table.Table, encode func(io.Writer, *table.Table) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // G304: writing user supplied paths is the point.
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("no write access to %s: %w", path, err)
		}
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	w := bufio.NewWriter(f)
	if err := encode(w, t); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
