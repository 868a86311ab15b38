package citro3d

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/go3ds/citro3d/backend"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for citro3d and all its sub-packages.
// By default, citro3d produces no log output. Pass nil to restore the
// default silent behavior.
//
// Log levels used by citro3d:
//   - [slog.LevelDebug]: per-call diagnostics (frame scope transitions)
//   - [slog.LevelInfo]: lifecycle events (instance init, queue teardown)
//   - [slog.LevelWarn]: close-path anomalies (close of an active target)
//
// Example:
//
//	citro3d.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by citro3d. Sub-packages call
// this to share the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by backends that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes the current logger to a backend if it implements
// the loggerSetter interface. Called when an Instance adopts a backend.
func propagateLogger(b backend.Backend) {
	if ls, ok := b.(loggerSetter); ok {
		ls.SetLogger(Logger())
	}
}
