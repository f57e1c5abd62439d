// Package watcher re-triggers icon generation when the sparkle source image
// changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of events an editor save produces.
const debounceDelay = 500 * time.Millisecond

// Watcher monitors a single source file and invokes a rebuild callback
// after changes settle.
type Watcher struct {
	path    string // absolute path of the watched file
	fsw     *fsnotify.Watcher
	rebuild func()
}

// New creates a watcher for path.  The parent directory is watched rather
// than the file itself: editors that save via rename would otherwise drop
// the watch.
func New(path string, rebuild func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{path: abs, fsw: fsw, rebuild: rebuild}, nil
}

// Run processes events until ctx is cancelled.  Rapid successive events are
// debounced so a single save triggers a single rebuild.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(debounceDelay)

		case <-debounce.C:
			w.rebuild()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}
