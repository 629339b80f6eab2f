package knowledge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the knowledge file when it changes on disk. Each
// successful reload builds a fresh immutable Base and hands it to the
// callback; a reload that fails validation is logged and the previous
// tables stay in service.
type Watcher struct {
	path     string
	onReload func(*Base)
	logger   *slog.Logger
}

// NewWatcher creates a watcher for the given knowledge file. logger may
// be nil.
func NewWatcher(path string, onReload func(*Base), logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{path: path, onReload: onReload, logger: logger}
}

// Run watches the file until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create knowledge watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil {
			w.logger.Warn("close knowledge watcher", "error", closeErr)
		}
	}()

	if err := watcher.Add(w.path); err != nil {
		return fmt.Errorf("watch knowledge file %s: %w", w.path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors replace files via rename+create as often as they
			// write in place.
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			base, err := LoadFile(w.path)
			if err != nil {
				w.logger.Warn("knowledge reload failed, keeping previous tables",
					"path", w.path, "error", err)
				continue
			}
			w.logger.Info("knowledge tables reloaded",
				"path", w.path, "sprite_keys", base.SpriteCount())
			w.onReload(base)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("knowledge watcher error", "error", err)
		}
	}
}
