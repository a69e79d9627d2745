// Package watch reports changes to log source files.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const subscriberBuffer = 16

// Watcher watches the parent directories of a set of files, so that
// truncation and replacement are reported as well as appends, and fans the
// changed paths out to subscribers.
type Watcher struct {
	fsw   *fsnotify.Watcher
	files map[string]bool

	mu          sync.Mutex
	subscribers map[int]chan string
	nextID      int
	closed      bool
}

// New creates a Watcher for the given file paths.
func New(paths []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fsw:         fsw,
		files:       make(map[string]bool, len(paths)),
		subscribers: make(map[int]chan string),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("cannot resolve watch path")
			continue
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fsw.Add(dir); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("cannot watch directory")
		}
	}
	return w, nil
}

// Paths returns the watched files, sorted.
func (w *Watcher) Paths() []string {
	out := make([]string, 0, len(w.files))
	for p := range w.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Subscribe returns a channel of changed file paths and a function that
// cancels the subscription. Events are dropped for subscribers that fall
// behind; the periodic refresh covers anything missed.
func (w *Watcher) Subscribe() (<-chan string, func()) {
	ch := make(chan string, subscriberBuffer)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		close(ch)
		return ch, func() {}
	}
	id := w.nextID
	w.nextID++
	w.subscribers[id] = ch

	return ch, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if sub, ok := w.subscribers[id]; ok {
			delete(w.subscribers, id)
			close(sub)
		}
	}
}

// Start forwards file events until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	defer w.fsw.Close()
	defer w.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.files[filepath.Clean(ev.Name)] {
				continue
			}
			switch {
			case ev.Op&fsnotify.Write != 0,
				ev.Op&fsnotify.Create != 0,
				ev.Op&fsnotify.Remove != 0,
				ev.Op&fsnotify.Rename != 0:
				w.broadcast(filepath.Clean(ev.Name))
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Str("component", "watch").Msg("watcher error")
		}
	}
}

func (w *Watcher) broadcast(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subscribers {
		select {
		case ch <- path:
		default:
		}
	}
}

func (w *Watcher) closeAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, ch := range w.subscribers {
		close(ch)
		delete(w.subscribers, id)
	}
	w.closed = true
}
