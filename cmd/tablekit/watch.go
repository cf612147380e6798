package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

func (a *app) watch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no input file", errUsage)
	}
	return watchFiles(ctx, args, a.debounce, func() {
		t, err := a.load(ctx, args...)
		if err != nil {
			slog.WarnContext(ctx, "Failed to reload tables", "err", err)
			return
		}
		slog.InfoContext(ctx, "Reloaded tables", "rows", t.DataLen(), "types", t.InferTypes(true).String())
	})
}

// watchFiles calls reload once, then again every time one of paths is written,
// created or renamed over, until ctx is done.
//
// The parent directories are watched rather than the files so that editors
// replacing a file atomically keep triggering reloads. Bursts of events within
// debounce trigger a single reload.
func watchFiles(ctx context.Context, paths []string, debounce time.Duration, reload func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()
	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true
		if d := filepath.Dir(abs); !dirs[d] {
			if err := w.Add(d); err != nil {
				return fmt.Errorf("failed to watch %s: %w", d, err)
			}
			dirs[d] = true
		}
	}
	slog.InfoContext(ctx, "Watching tables", "files", len(paths))
	reload()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.DebugContext(ctx, "Table file changed", "path", event.Name, "op", event.Op.String())
				pending = time.After(debounce)
			}
		case <-pending:
			pending = nil
			reload()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.WarnContext(ctx, "Error watching tables", "err", err)
		}
	}
}
