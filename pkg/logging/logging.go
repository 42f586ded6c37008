// Package logging configures structured logging for DealDesk.
//
// Terminals get coloured output from tint; production deployments can ask
// for JSON lines instead.
//
// Usage:
//
//	logging.Setup(slog.LevelInfo, logging.FormatPretty)
//	logger := logging.New(os.Stdout, slog.LevelDebug, logging.FormatJSON)
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Setup builds a logger writing to stderr and installs it as slog's default.
func Setup(level slog.Level, format string) *slog.Logger {
	logger := New(os.Stderr, level, format)
	slog.SetDefault(logger)
	return logger
}

// New builds a logger for w. Any format other than FormatJSON is pretty.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
