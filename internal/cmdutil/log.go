package cmdutil

import (
	"io"
	"log/slog"
)

// NewLogger builds the text logger shared by a run. verbose enables debug
// records; quiet drops everything below error.
func NewLogger(dst io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{Level: level}))
}

// Warnf logs a user-facing warning unless quiet.
func Warnf(log *slog.Logger, quiet bool, msg string, args ...any) {
	if quiet || log == nil {
		return
	}
	log.Warn(msg, args...)
}
