// Package logging builds the slog loggers used by the tracker.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"example.com/ftracker/internal/config"
)

// New returns a logger writing to w in the configured format. Text output is
// colorized only when w is a terminal.
func New(cfg config.Config, w io.Writer) *slog.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(w),
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
