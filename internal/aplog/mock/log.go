package mock

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// TestingHandler captures logs for testing. Handlers derived through WithAttrs share the same log store so
// assertions can be made against the root handler.
type TestingHandler struct {
	Logs []LogEntry
	TB   testing.TB

	mu    *sync.Mutex
	root  *TestingHandler
	attrs []slog.Attr
}

type LogEntry struct {
	Level   slog.Level
	Message string
	Attrs   []slog.Attr
}

func (h *TestingHandler) store() *TestingHandler {
	if h.root != nil {
		return h.root
	}
	return h
}

func (h *TestingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return true
}

func (h *TestingHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)
		return true
	})

	s := h.store()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Logs = append(s.Logs, LogEntry{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

func (h *TestingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return &TestingHandler{
		TB:    h.TB,
		mu:    h.mu,
		root:  h.store(),
		attrs: merged,
	}
}

func (h *TestingHandler) WithGroup(name string) slog.Handler {
	return h
}

// Messages returns a copy of the captured messages in order.
func (h *TestingHandler) Messages() []string {
	s := h.store()
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := make([]string, 0, len(s.Logs))
	for _, l := range s.Logs {
		msgs = append(msgs, l.Message)
	}
	return msgs
}

// NewTestLogger creates a new test logger
func NewTestLogger(tb testing.TB) (*slog.Logger, *TestingHandler) {
	handler := &TestingHandler{TB: tb, mu: &sync.Mutex{}}
	return slog.New(handler), handler
}
