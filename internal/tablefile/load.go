package tablefile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maruel/tablekit/internal/table"
)

// InferMode selects the type inference run by Load.
type InferMode int

const (
	// InferNone keeps the cells as decoded.
	InferNone InferMode = iota
	// InferKind uses table.Table.InferTypes, judging cells by their kind.
	InferKind
	// InferText uses table.Table.InferTextTypes, also parsing string content.
	InferText
)

func (m InferMode) String() string {
	switch m {
	case InferNone:
		return "none"
	case InferKind:
		return "kind"
	case InferText:
		return "text"
	default:
		return fmt.Sprintf("infer(%d)", int(m))
	}
}

// ParseInferMode returns the mode named s. The empty string is InferNone.
func ParseInferMode(s string) (InferMode, error) {
	switch s {
	case "", "none", "off":
		return InferNone, nil
	case "kind", "on":
		return InferKind, nil
	case "text":
		return InferText, nil
	}
	return InferNone, fmt.Errorf("unknown infer mode %q (want none, kind or text)", s)
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Infer runs type inference by column name on the concatenated table and
	// applies the result.
	Infer InferMode
}

// Load reads one logical table from paths.
//
// Every file must have the first file's header. The result holds that header
// followed by the data rows of each file in argument order. Extensions are
// checked before any file is opened.
func Load(ctx context.Context, opts LoadOptions, paths ...string) (*table.Table, error) {
	if len(paths) == 0 {
		return nil, ErrNoTables
	}
	cs := make([]Codec, len(paths))
	for i, p := range paths {
		c, err := CodecFor(p)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}

	var rows []table.Row
	var header table.Row
	for i, p := range paths {
		t, err := readFile(p, cs[i])
		if err != nil {
			return nil, err
		}
		if t.Len() == 0 {
			return nil, fmt.Errorf("%s: no header row: %w", p, ErrMalformedData)
		}
		slog.DebugContext(ctx, "Loaded table file", "path", p, "rows", t.DataLen())
		if i == 0 {
			header = t.HeaderRow()
			rows = append(rows, t.Rows()...)
			continue
		}
		if !t.HeaderRow().Equal(header) {
			return nil, fmt.Errorf("%s: header %v differs from %v in %s: %w", p, t.Header(), header.Strings(), paths[0], table.ErrHeaderMismatch)
		}
		rows = append(rows, t.Rows()[1:]...)
	}
	out := table.FromRows(rows...)

	var types *table.ColumnTypes
	switch opts.Infer {
	case InferNone:
		return out, nil
	case InferKind:
		types = out.InferTypes(true)
	case InferText:
		types = out.InferTextTypes(true)
	default:
		return nil, fmt.Errorf("unknown infer mode %d", int(opts.Infer))
	}
	if err := out.ApplyTypes(types); err != nil {
		return nil, fmt.Errorf("failed to apply inferred types %s: %w", types, err)
	}
	slog.InfoContext(ctx, "Inferred column types", "types", types.String())
	return out, nil
}
