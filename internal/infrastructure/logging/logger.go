// Package logging holds the structured logger shared by the engine packages.
//
// By default nothing is logged. The process entry point installs a real
// handler with SetLogger.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger replaces the engine logger. Passing nil restores silence.
//
// Levels used by the engine:
//   - [slog.LevelDebug]: resize recomputes, scene hooks, device state
//   - [slog.LevelInfo]: pipeline creation, scene switches, shutdown
//   - [slog.LevelWarn]: events that arrive before startup completes
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current engine logger. It never returns nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// For returns the engine logger tagged with a component attribute.
func For(component string) *slog.Logger {
	return Logger().With(slog.String("component", component))
}
