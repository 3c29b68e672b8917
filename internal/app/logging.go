package app

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dshills/quill/internal/config"
)

// NewLogger creates the application logger. Records are written as JSON to
// the rotating log file; the terminal belongs to the renderer and is never
// logged to. An empty file name discards all records.
//
// The returned closer releases the log file.
func NewLogger(cfg config.LogConfig) (*slog.Logger, io.Closer) {
	if cfg.File == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), nopCloser{}
	}

	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return NewLoggerTo(w, cfg.SlogLevel()), w
}

// NewLoggerTo creates a JSON logger writing to w.
func NewLoggerTo(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithComponent returns a logger tagging records with a component name.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With("component", component)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
