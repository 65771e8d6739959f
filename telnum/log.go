package telnum

import (
	"io"
	"log/slog"
)

// Logger wraps slog.Logger, following the thin-wrapper convention used
// across this codebase's sibling services for structured, leveled logging.
// The metadata store is the only component that logs: everything else in
// this package is a pure function over its arguments.
type Logger struct {
	*slog.Logger
}

// NewLogger builds a JSON-structured logger writing to w at the given
// level ("debug", "info", "warn", "error"; anything else defaults to
// "info").
func NewLogger(w io.Writer, level string) *Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return &Logger{Logger: slog.New(handler)}
}

// NewNopLogger returns a logger that discards everything, used as the
// Store's default so construction never requires an explicit sink.
func NewNopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
