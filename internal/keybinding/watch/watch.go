// Package watch is a thin, debounced façade over fsnotify watching the
// user keybinding config file (spec.md §4.7, C7). It is purely
// edge-triggered: CheckForChanges is non-blocking and drains whatever
// arrived since the last call.
package watch

import (
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce matches the write-rename-metadata patterns of common
// editors (spec.md §9).
const DefaultDebounce = 500 * time.Millisecond

// MinDebounce is the floor spec.md §9 calls out: shorter and reloads
// thrash.
const MinDebounce = 200 * time.Millisecond

// Watcher watches a single config file (not its containing directory, and
// not recursively) for changes, debouncing bursts of filesystem events
// into a single pending notification.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	changed  chan struct{}
	errors   chan error
	stopCh   chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce, clamped to MinDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d < MinDebounce {
			d = MinDebounce
		}
		w.debounce = d
	}
}

// New starts watching path. The caller must call Close when done to
// release the underlying OS handle.
func New(path string, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     path,
		debounce: DefaultDebounce,
		changed:  make(chan struct{}, 1),
		errors:   make(chan error, 1),
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run()
	return w, nil
}

// run drains fsw's Events/Errors channels on a background goroutine,
// coalescing bursts of events into one pending notification per debounce
// window. It never blocks the host's main loop; CheckForChanges only ever
// reads the already-coalesced signal.
func (w *Watcher) run() {
	var timer *time.Timer
	for {
		select {
		case _, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, w.signal)
			} else {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.signalError(err)
		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) signal() {
	select {
	case w.changed <- struct{}{}:
	default:
	}
}

// signalError queues err for Errors, dropping it if the one-slot buffer is
// already full — the host only needs to know a watcher failed, not see
// every failure from a sustained run of them.
func (w *Watcher) signalError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

// CheckForChanges is non-blocking. It drains all pending change
// notifications and reports whether any arrived since the last call.
func (w *Watcher) CheckForChanges() bool {
	select {
	case <-w.changed:
		return true
	default:
		return false
	}
}

// Errors returns the channel the host drains on its poll loop (spec.md
// §4.7/§5: watcher errors are logged and otherwise ignored, never
// surfaced to the user). Reading it is optional; undelivered errors are
// dropped rather than blocking the watcher's goroutine.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the background goroutine and releases the OS watch handle.
func (w *Watcher) Close() error {
	close(w.stopCh)
	return w.fsw.Close()
}
