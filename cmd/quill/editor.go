package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/input/tty"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("quill needs an interactive terminal")

// runEditor takes over the terminal and runs the editor until exit.
func runEditor(ctx context.Context, cfg *config.Config, fsys afero.Fs) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}

	logger, logCloser := app.NewLogger(cfg.Log)
	defer logCloser.Close()

	t, err := tty.Open(app.WithComponent(logger, "tty"))
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		if closeErr := t.Close(); closeErr != nil {
			logger.Warn("close terminal", "error", closeErr)
		}
	}()

	if w, h, err := t.WindowSize(); err == nil {
		logger.Debug("window size", "cols", w, "rows", h)
	}

	editor, err := app.New(app.Options{
		Terminal: t,
		Config:   cfg,
		FS:       fsys,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return editor.Run(ctx)
}
