package localfs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fernwood-labs/plank-cli/internal/core/ports/driven"
	"github.com/fernwood-labs/plank-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.TreeWatcher = (*Watcher)(nil)

const defaultDebounce = 250 * time.Millisecond

// Watcher emits a ChangeEvent whenever something under a watched root
// changes, after a quiet period. It watches the real filesystem; afero
// has no change notification surface, so this adapter bypasses it.
type Watcher struct {
	// Debounce is how long the tree must stay quiet before an event is
	// emitted. Defaults to 250ms.
	Debounce time.Duration
}

// NewWatcher creates a watcher with the default debounce window.
func NewWatcher() *Watcher {
	return &Watcher{Debounce: defaultDebounce}
}

// Watch starts watching root and returns the event channel. The channel
// closes when ctx is cancelled or the underlying watcher dies.
// Subdirectories are watched recursively, including ones created later;
// hidden directories are left alone.
func (w *Watcher) Watch(ctx context.Context, root string) (<-chan driven.ChangeEvent, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := addTree(fw, root); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}

	events := make(chan driven.ChangeEvent, 1)
	go w.loop(ctx, fw, events)
	return events, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, out chan<- driven.ChangeEvent) {
	defer fw.Close()
	defer close(out)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending driven.ChangeEvent
	)
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			if ev.Op.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := addTree(fw, ev.Name); err != nil {
						logger.Warn("watch new directory %s: %v", ev.Name, err)
					}
				}
			}
			pending.Path = ev.Name
			pending.Changes++
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.Debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)

		case <-timerC:
			select {
			case out <- pending:
			case <-ctx.Done():
				return
			}
			pending = driven.ChangeEvent{}
			timer = nil
			timerC = nil
		}
	}
}

// addTree registers dir and every non-hidden directory below it.
func addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}
