// Package sse writes Server-Sent Events frames onto an HTTP response.
package sse

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

var (
	// ErrStreamingUnsupported is returned when the response cannot flush.
	ErrStreamingUnsupported = errors.New("response writer does not support flushing")
	// ErrClosed is returned by writes attempted after Close. Callers drop
	// the frame; it is never retried.
	ErrClosed = errors.New("event stream closed")
)

// Writer serialises frames onto one response. It is safe for concurrent use
// so a ping ticker and the event loop can share it.
type Writer struct {
	mu      sync.Mutex
	rw      http.ResponseWriter
	flusher http.Flusher
	closed  bool
}

// NewWriter wraps rw, which must implement http.Flusher.
func NewWriter(rw http.ResponseWriter) (*Writer, error) {
	f, ok := rw.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}
	return &Writer{rw: rw, flusher: f}, nil
}

// Open sends the event-stream headers and flushes them so the client knows
// the channel is live before the first event.
func (w *Writer) Open() {
	w.mu.Lock()
	defer w.mu.Unlock()
	h := w.rw.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.rw.WriteHeader(http.StatusOK)
	w.flusher.Flush()
}

// Data writes v as a JSON data frame.
func (w *Writer) Data(v any) error {
	return w.Event("", v)
}

// Event writes v as a JSON data frame under the given event name. An empty
// name produces an unnamed frame.
func (w *Writer) Event(name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	var b strings.Builder
	if name != "" {
		b.WriteString("event: ")
		b.WriteString(name)
		b.WriteByte('\n')
	}
	for _, line := range strings.Split(string(payload), "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return w.write(b.String())
}

// Comment writes a comment frame, ignored by EventSource clients.
func (w *Writer) Comment(text string) error {
	return w.write(": " + text + "\n\n")
}

func (w *Writer) write(frame string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if _, err := w.rw.Write([]byte(frame)); err != nil {
		return err
	}
	w.flusher.Flush()
	return nil
}

// Close stops all further writes. It reports whether this call closed it.
func (w *Writer) Close() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	w.closed = true
	return true
}

// Closed reports whether Close has been called.
func (w *Writer) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}
