// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Debug records are emitted only
// when verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs New(w, verbose) as the default logger.
func Setup(w io.Writer, verbose bool) *slog.Logger {
	l := New(w, verbose)
	slog.SetDefault(l)
	return l
}

// Err returns an "error" attribute carrying err's text.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}
