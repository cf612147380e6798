// Package main is the entry point for the tablekit command.
//
// tablekit loads tabular data from CSV and gob files, infers and coerces column
// types, derives arithmetic columns and writes the result back, optionally
// split into chunks. Settings come from tablekit.yaml, a .env file, TABLEKIT_*
// environment variables and CLI flags, in increasing priority.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/maruel/tablekit/internal/config"
)

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		code := codeOf(err)
		fmt.Fprintf(os.Stderr, "tablekit: %s: %v\n", code, err)
		os.Exit(code.ExitStatus())
	}
}

func mainImpl() error {
	version := flag.Bool("version", false, "Print version and exit")
	configPath := flag.String("config", config.DefaultPath, "YAML configuration file")
	envFile := flag.String("env-file", ".env", "dotenv file holding TABLEKIT_* overrides")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	infer := flag.String("infer", "text", "Type inference when loading (none, kind, text)")
	flag.Usage = usage
	flag.Parse()

	if *version {
		return printVersion(os.Stdout, readBuildInfo())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	ll := &slog.LevelVar{}
	ll.Set(slog.LevelInfo)
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000", // Like time.TimeOnly plus milliseconds.
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Empty strings and zero counts are noise.
			switch v := a.Value.Any().(type) {
			case string:
				if v == "" {
					return slog.Attr{}
				}
			case int64:
				if v == 0 && a.Key != "rows" {
					return slog.Attr{}
				}
			case nil:
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	cfg, err := config.ReadFile(*configPath)
	if err != nil {
		// The default file is optional, an explicit one is not.
		if set["config"] || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		cfg = config.Default()
	}
	env, err := config.Environ(*envFile)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevel
	}
	if set["infer"] {
		cfg.Infer = *infer
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	l, _ := cfg.Level()
	ll.Set(l)
	slog.DebugContext(ctx, "Configuration", "log_level", cfg.LogLevel, "infer", cfg.Infer, "max_rows", cfg.MaxRows)

	if flag.NArg() == 0 {
		flag.Usage()
		return fmt.Errorf("%w: missing command", errUsage)
	}
	a := &app{cfg: cfg, out: os.Stdout, debounce: 100 * time.Millisecond}
	return a.run(ctx, flag.Args())
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: tablekit [flags] <command> [args]\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-9s %-26s %s\n", c.name, c.args, c.help)
	}
	fmt.Fprintf(out, "\nflags:\n")
	flag.PrintDefaults()
}

// buildInfo describes the running binary.
type buildInfo struct {
	Version   string
	GoVersion string
	Revision  string
	Modified  bool
}

func readBuildInfo() buildInfo {
	b := buildInfo{Version: "unknown", GoVersion: "unknown", Revision: "unknown"}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	b.Version = info.Main.Version
	if b.Version == "" || b.Version == "(devel)" {
		b.Version = "dev"
	}
	b.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.Revision = s.Value
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

func printVersion(w io.Writer, b buildInfo) error {
	_, err := fmt.Fprintf(w, "tablekit %s\n  Go version: %s\n  Revision:   %s\n", b.Version, b.GoVersion, b.Revision)
	if err == nil && b.Modified {
		_, err = fmt.Fprintf(w, "  Modified:   true\n")
	}
	return err
}
