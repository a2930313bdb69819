// Package watch re-runs theme generation whenever a source image changes
// on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/davidlopes/tinge/internal/core"
	"github.com/davidlopes/tinge/internal/logging"
)

// Run watches the image at path until ctx is canceled, invoking onChange
// after each write or rename, debounced so editor save bursts trigger a
// single regeneration. Errors from onChange are logged, not fatal: a
// broken intermediate save should not stop the watch.
func Run(ctx context.Context, path string, debounce time.Duration, log *logging.Logger, onChange func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return core.ErrIO("WATCH_INIT", "creating watcher").WithCause(err)
	}
	defer watcher.Close()

	// Watch the directory: editors typically replace files via rename, and
	// watching the file itself loses the watch on the first save.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return core.ErrIO("WATCH_ADD", "watching "+dir).WithCause(err)
	}

	base := filepath.Base(path)
	var timer *time.Timer
	var fire <-chan time.Time

	log.Info("watching for changes", "path", path, "debounce", debounce.String())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				// Drain a stale fire before resetting, or an event racing
				// the expired timer triggers one early regeneration.
				if !timer.Stop() {
					select {
					case <-fire:
					default:
					}
				}
				timer.Reset(debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			if err := onChange(ctx); err != nil {
				log.Error("regeneration failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)
		}
	}
}
