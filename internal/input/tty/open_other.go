//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)

package tty

import (
	"errors"
	"log/slog"
)

// ErrUnsupported is returned by Open on platforms without a raw tty.
var ErrUnsupported = errors.New("tty: unsupported platform")

// Open is not supported on this platform.
func Open(_ *slog.Logger) (*TTY, error) {
	return nil, ErrUnsupported
}
