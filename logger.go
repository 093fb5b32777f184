package heat

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/heat/kernel"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with accumulation.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for heat and its sub-packages.
// By default heat produces no log output.
//
// Pass nil to restore the silent default.
//
// Log levels used by heat:
//   - [slog.LevelDebug]: kernel rebuilds, per-call grid and band sizes
//
// Example:
//
//	heat.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	kernel.SetLogger(l)
}

// Logger returns the current logger used by heat.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
