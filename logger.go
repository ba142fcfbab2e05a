package paraster

import "context"
import "log/slog"
import "sync/atomic"

// Discards all records. Enabled() returns false, so callers
// skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Sets the logger used by the package. Logging is disabled by
// default. Passing nil disables it again. Safe for concurrent use.
//
// Renderers log layout, canvas and cache statistics at
// [slog.LevelDebug].
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Returns the current package logger. Never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
