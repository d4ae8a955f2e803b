package aplog

import "log/slog"

// NewNoopLogger returns a logger that drops everything. Used where a component requires a logger but the caller
// has nothing to say, mostly tests.
func NewNoopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
