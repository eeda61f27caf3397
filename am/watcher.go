package am

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/lad/errors"
	"github.com/teranos/lad/logger"
)

// DefaultDebounce is how long a Watcher waits for writes to settle
const DefaultDebounce = 500 * time.Millisecond

// ChangeCallback is called once per burst of changes with the last path that changed
type ChangeCallback func(path string)

// Watcher watches config files and source directories and calls back once
// writes settle. `ladgen build --watch` uses it to rebuild.
type Watcher struct {
	watcher        *fsnotify.Watcher
	callback       ChangeCallback
	debouncePeriod time.Duration

	mu            sync.Mutex
	debounceTimer *time.Timer
}

// NewWatcher watches every path in paths. Directories are watched
// non-recursively.
func NewWatcher(callback ChangeCallback, paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("nothing to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", path)
		}
		logger.Debugw("Watching path", logger.FieldPath, path)
	}

	return &Watcher{
		watcher:        watcher,
		callback:       callback,
		debouncePeriod: DefaultDebounce,
	}, nil
}

// Run blocks until ctx is done, dispatching debounced change callbacks.
// The watcher is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			// Only react to Write, Create and Rename events
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debugw("Watcher detected change",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.schedule(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("Watcher error",
				logger.FieldError, err)
		}
	}
}

// schedule debounces rapid changes into a single callback
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		w.callback(path)
	})
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()

	if err := w.watcher.Close(); err != nil {
		logger.Warnw("Failed to close watcher", logger.FieldError, err)
	}
}
