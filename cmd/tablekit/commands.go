package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/maruel/tablekit/internal/config"
	"github.com/maruel/tablekit/internal/table"
	"github.com/maruel/tablekit/internal/tablefile"
)

var errUsage = errors.New("invalid arguments")

type command struct {
	name string
	args string
	help string
	run  func(a *app, ctx context.Context, args []string) error
}

var commands = []command{
	{"show", "FILE...", "print the loaded table as a report", (*app).show},
	{"types", "FILE...", "print the inferred column types", (*app).types},
	{"convert", "[-max-rows N] OUT FILE...", "save in chunks named OUT_partN", (*app).convert},
	{"save", "OUT FILE...", "save as a single .csv, .gob or .txt file", (*app).save},
	{"concat", "OUT A B", "append the data rows of B to A", (*app).concat},
	{"split", "N OUT1 OUT2 FILE...", "cut after N rows, header included", (*app).split},
	{"arith", "OP A B RESULT OUT FILE...", "add a RESULT column computed from A and B", (*app).arith},
	{"describe", "FILE...", "print a JSON Schema of the column types", (*app).describe},
	{"watch", "FILE...", "reload and log types whenever an input changes", (*app).watch},
}

// app holds what every command needs.
type app struct {
	cfg *config.Config
	out io.Writer
	// debounce delays reloads in watch until writes settle.
	debounce time.Duration
}

func (a *app) run(ctx context.Context, args []string) error {
	for _, c := range commands {
		if c.name == args[0] {
			if err := c.run(a, ctx, args[1:]); err != nil {
				if errors.Is(err, errUsage) {
					return fmt.Errorf("%w\nusage: tablekit %s %s", err, c.name, c.args)
				}
				return fmt.Errorf("%s: %w", c.name, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

// load reads paths as one table, runs the configured inference and then
// applies the column types forced by the configuration.
func (a *app) load(ctx context.Context, paths ...string) (*table.Table, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no input file", errUsage)
	}
	mode, err := a.cfg.InferMode()
	if err != nil {
		return nil, err
	}
	t, err := tablefile.Load(ctx, tablefile.LoadOptions{Infer: mode}, paths...)
	if err != nil {
		return nil, err
	}
	types, err := a.cfg.ColumnTypes()
	if err != nil {
		return nil, err
	}
	if types != nil {
		if err := t.ApplyTypes(types); err != nil {
			return nil, fmt.Errorf("failed to apply configured types: %w", err)
		}
		slog.DebugContext(ctx, "Applied configured column types", "types", types.String())
	}
	return t, nil
}

func (a *app) show(ctx context.Context, args []string) error {
	t, err := a.load(ctx, args...)
	if err != nil {
		return err
	}
	return tablefile.WriteReport(a.out, t)
}

func (a *app) types(ctx context.Context, args []string) error {
	t, err := a.load(ctx, args...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, t.InferTypes(true))
	return err
}

func (a *app) convert(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	maxRows := fs.Int("max-rows", a.cfg.MaxRows, "Maximum rows per file, header included")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() < 2 {
		return errUsage
	}
	t, err := a.load(ctx, fs.Args()[1:]...)
	if err != nil {
		return err
	}
	paths, err := tablefile.Save(ctx, t, fs.Arg(0), *maxRows)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(a.out, p); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) save(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	t, err := a.load(ctx, args[1:]...)
	if err != nil {
		return err
	}
	return tablefile.SaveFile(args[0], t)
}

func (a *app) concat(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	first, err := a.load(ctx, args[1])
	if err != nil {
		return err
	}
	second, err := a.load(ctx, args[2])
	if err != nil {
		return err
	}
	t, err := table.Concat(first, second)
	if err != nil {
		return err
	}
	return tablefile.SaveFile(args[0], t)
}

func (a *app) split(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return errUsage
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: row count: %w", errUsage, err)
	}
	t, err := a.load(ctx, args[3:]...)
	if err != nil {
		return err
	}
	first, second, err := table.Split(t, n)
	if err != nil {
		return err
	}
	if err := tablefile.SaveFile(args[1], first); err != nil {
		return err
	}
	return tablefile.SaveFile(args[2], second)
}

func (a *app) arith(ctx context.Context, args []string) error {
	if len(args) < 6 {
		return errUsage
	}
	op, err := table.ParseOp(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	t, err := a.load(ctx, args[5:]...)
	if err != nil {
		return err
	}
	if err := t.Arith(op, parseColumn(args[1]), parseColumn(args[2]), args[3]); err != nil {
		return err
	}
	return tablefile.SaveFile(args[4], t)
}

func (a *app) describe(ctx context.Context, args []string) error {
	t, err := a.load(ctx, args...)
	if err != nil {
		return err
	}
	title := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	b, err := json.MarshalIndent(t.InferTypes(true).JSONSchema(title), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "%s\n", b)
	return err
}

// parseColumn returns a positional column for "#N" and a named one otherwise.
func parseColumn(s string) table.Column {
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		if i, err := strconv.Atoi(rest); err == nil {
			return table.Index(i)
		}
	}
	return table.Name(s)
}
