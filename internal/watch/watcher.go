// Package watch reruns roster generation when its input files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches a fixed set of files. It registers their parent
// directories so atomic-rename saves are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	dirs     map[string]struct{}
	debounce time.Duration
	onChange func(context.Context) error
	logger   *zap.Logger
}

// New starts watching files. onChange runs once per debounced burst of
// changes; its errors are logged and do not stop the watcher.
func New(files []string, debounce time.Duration, logger *zap.Logger, onChange func(context.Context) error) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	w := &Watcher{
		watcher:  fw,
		files:    map[string]struct{}{},
		dirs:     map[string]struct{}{},
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
	}
	if err := w.Track(files); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return w, nil
}

// Track replaces the watched file set, adding and dropping directory watches
// as needed. It is not safe for concurrent use with Run, except from inside
// onChange, which Run calls on its own goroutine.
func (w *Watcher) Track(files []string) error {
	nextFiles := make(map[string]struct{}, len(files))
	nextDirs := map[string]struct{}{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("watch: resolve %s: %w", f, err)
		}
		nextFiles[abs] = struct{}{}
		nextDirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range nextDirs {
		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watch: add %s: %w", dir, err)
		}
		w.logger.Debug("watching directory", zap.String("dir", dir))
	}
	for dir := range w.dirs {
		if _, ok := nextDirs[dir]; ok {
			continue
		}
		if err := w.watcher.Remove(dir); err != nil {
			w.logger.Debug("unwatch directory", zap.String("dir", dir), zap.Error(err))
		}
	}
	w.files = nextFiles
	w.dirs = nextDirs
	return nil
}

// Run blocks until ctx is done, then releases the underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("input changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			if err := w.onChange(ctx); err != nil {
				w.logger.Error("regeneration failed", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}
