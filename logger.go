package cg

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards every record. Enabled reports
// false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for cg and its devices.
// By default cg produces no log output. Pass nil to restore silence.
//
// The logger is looked up on every message, so the change reaches
// contexts and devices that already exist. Devices given their own logger
// through SetLogger keep it.
//
// Log levels used by cg:
//   - [slog.LevelDebug]: program compilation, draw sizes, blend changes
//   - [slog.LevelInfo]: device lifecycle
//   - [slog.LevelWarn]: dropped work (vertex truncation, unbalanced restore)
//
// Example:
//
//	cg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by cg.
// It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
