package canvas2d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards everything. It is the default
// logger so the package is silent (and allocation-free on the logging path)
// until a caller opts in with SetLogger.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler       { return h }
func (h nopHandler) WithGroup(string) slog.Handler            { return h }

var currentLogger atomic.Pointer[slog.Logger]

func init() {
	currentLogger.Store(slog.New(nopHandler{}))
}

// SetLogger installs the package-level logger that new Contexts pick up
// when no WithLogger option is given. No drawing operation in this
// package writes log records to it. Passing nil restores the silent
// default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	currentLogger.Store(l)
}

// Logger returns the currently installed logger.
func Logger() *slog.Logger {
	return currentLogger.Load()
}
