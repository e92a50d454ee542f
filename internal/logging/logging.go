// Package logging builds the structured logger shared by the CLI and daemon.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to w. Debug enables debug level.
func New(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything; used by tests and by the
// CLI when output must stay clean.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewCLI returns a text logger for interactive commands. Only warnings and
// errors are shown unless debug is set, so logs do not drown the output.
func NewCLI(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
