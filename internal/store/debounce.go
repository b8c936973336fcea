package store

import (
	"log/slog"
	"sync"
	"time"

	"daylog/internal/model"
)

// DebouncedWriter coalesces rapid successive mutations into a single
// trailing-edge save: each Notify re-arms the timer, and the write happens
// once the document has been quiescent for the configured delay. A save
// failure is logged and remembered for the next Flush; it never rolls
// back the in-memory document.
type DebouncedWriter struct {
	store  *Store
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *model.Document
	lastErr error
}

func NewDebouncedWriter(store *Store, delay time.Duration, logger *slog.Logger) *DebouncedWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &DebouncedWriter{store: store, delay: delay, logger: logger}
}

// Notify records the latest document state and (re)starts the quiescence
// timer. Only the most recent document is ever written.
func (w *DebouncedWriter) Notify(doc *model.Document) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = doc
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

func (w *DebouncedWriter) fire() {
	w.mu.Lock()
	doc := w.pending
	w.pending = nil
	w.timer = nil
	w.mu.Unlock()
	if doc == nil {
		return
	}
	if err := w.store.Save(doc); err != nil {
		w.logger.Error("autosave failed", "path", w.store.Path(), "error", err)
		w.mu.Lock()
		w.lastErr = err
		w.mu.Unlock()
	}
}

// Flush cancels any armed timer and writes the pending document now.
// It returns the first error since the last Flush, including failures
// from timer-driven saves.
func (w *DebouncedWriter) Flush() error {
	w.mu.Lock()
	doc := w.pending
	w.pending = nil
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	err := w.lastErr
	w.lastErr = nil
	w.mu.Unlock()

	if doc != nil {
		if saveErr := w.store.Save(doc); saveErr != nil {
			return saveErr
		}
	}
	return err
}

// Close flushes and shuts the writer down.
func (w *DebouncedWriter) Close() error {
	return w.Flush()
}
