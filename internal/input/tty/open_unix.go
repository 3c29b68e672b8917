//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package tty

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

// Open opens the controlling terminal and switches it to raw mode.
func Open(logger *slog.Logger) (*TTY, error) {
	t, err := tcell.NewDevTty()
	if err != nil {
		return nil, fmt.Errorf("open tty: %w", err)
	}
	if err := t.Start(); err != nil {
		_ = t.Close()
		return nil, fmt.Errorf("start tty: %w", err)
	}
	return New(t, logger), nil
}
