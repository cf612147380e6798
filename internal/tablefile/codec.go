package tablefile

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/maruel/tablekit/internal/table"
)

var (
	// ErrUnsupportedFormat is returned for a path whose extension has no codec.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrMalformedData is returned when a file cannot be decoded.
	ErrMalformedData = errors.New("malformed data")
	// ErrNoTables is returned by Load when called without paths.
	ErrNoTables = errors.New("no tables loaded")
)

// Codec converts a table to and from a byte stream.
type Codec interface {
	// Ext is the file extension handled by the codec, with the leading dot.
	Ext() string
	// Decode reads a whole table. Decoding failures wrap ErrMalformedData.
	Decode(r io.Reader) (*table.Table, error)
	// Encode writes every row of t, header included.
	Encode(w io.Writer, t *table.Table) error
}

var (
	// CSV is the comma separated text codec.
	CSV Codec = csvCodec{}
	// Gob is the kind preserving binary codec.
	Gob Codec = gobCodec{}
)

var codecs = []Codec{CSV, Gob}

// CodecFor returns the codec handling path's extension.
func CodecFor(path string) (Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range codecs {
		if c.Ext() == ext {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%s: %w (want .csv or .gob)", path, ErrUnsupportedFormat)
}
