package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the config file for changes and signals reloads.
// Editors rewrite files in noisy ways (truncate+write, rename-over), so
// events are debounced and deduplicated by content hash: a save that does
// not change the bytes produces no signal.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	events    chan struct{}
	stop      chan struct{}
	debounce  *time.Timer
	lastHash  uint64
	mu        sync.Mutex
	closed    bool
}

// NewWatcher watches the config file at path. The parent directory is
// watched rather than the file itself so rename-over saves are seen.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsw,
		path:      path,
		events:    make(chan struct{}, 1),
		stop:      make(chan struct{}),
		lastHash:  hashFile(path),
	}

	go w.run()
	return w, nil
}

func hashFile(path string) uint64 {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

// run processes file system events.
func (w *Watcher) run() {
	defer func() {
		w.mu.Lock()
		w.closed = true
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.mu.Unlock()
		close(w.events)
	}()

	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}

			w.mu.Lock()
			// Debounce: wait 100ms for more events before signaling
			if w.debounce != nil {
				w.debounce.Stop()
			}
			w.debounce = time.AfterFunc(100*time.Millisecond, w.signal)
			w.mu.Unlock()
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Ignore errors, continue watching
		}
	}
}

func (w *Watcher) signal() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	h := hashFile(w.path)
	if h == w.lastHash {
		return
	}
	w.lastHash = h

	select {
	case w.events <- struct{}{}:
	default: // Channel full, skip
	}
}

// Events returns a channel that signals when the config content changed.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Stop shuts down the watcher.
func (w *Watcher) Stop() {
	close(w.stop)
	w.fsWatcher.Close()
}
