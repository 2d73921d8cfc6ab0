// Package logging sets up the zerolog logger shared by cmd/quatc and
// internal/csvgyro. The core packages (fix, quat, quant, rans, block)
// never import this: they stay silent w.r.t. globals.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console-writer logger at the given level, writing to w.
// level accepts the usual zerolog names ("debug", "info", "warn", "error");
// an unrecognized name falls back to "info".
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}

// Default returns a logger at info level writing to stderr, for callers
// that don't need a custom sink.
func Default() zerolog.Logger {
	return New(os.Stderr, "info")
}
