// Package tty provides the terminal input source.
//
// TTY wraps a tcell.Tty in raw mode. A reader goroutine reads chunks; they
// are translated to the editor's byte protocol and delivered one at a time.
// An escape sequence split across reads is reassembled, and an ESC with
// nothing following within the escape timeout is delivered alone. The
// modifiers decoded from a sequence stay latched until the next sequence
// starts.
package tty

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/input"
	"github.com/dshills/quill/internal/input/key"
)

// ErrClosed is returned by NextByte after Close.
var ErrClosed = errors.New("tty closed")

const (
	readChunk = 256

	// defaultEscTimeout is how long an unfinished escape sequence waits for
	// the rest of its bytes.
	defaultEscTimeout = 50 * time.Millisecond
)

type readResult struct {
	data []byte
	err  error
}

// TTY is a raw-mode terminal. It is an input.Source and an io.Writer for
// frames.
type TTY struct {
	tty    tcell.Tty
	logger *slog.Logger

	// copyText writes to the system clipboard.
	copyText func(string) error

	escTimeout time.Duration

	reads chan readResult
	done  chan struct{}

	mu      sync.Mutex
	strokes []input.Stroke
	pending []byte
	partial []byte
	mods    key.Modifier
	err     error

	resized atomic.Bool
	closed  atomic.Bool
}

// New wraps an already started tty.
func New(t tcell.Tty, logger *slog.Logger) *TTY {
	if logger == nil {
		logger = slog.Default()
	}
	tt := &TTY{
		tty:        t,
		logger:     logger,
		copyText:   clipboard.WriteAll,
		escTimeout: defaultEscTimeout,
		reads:      make(chan readResult),
		done:       make(chan struct{}),
	}
	t.NotifyResize(func() { tt.resized.Store(true) })
	go tt.readLoop()
	return tt
}

// readLoop reads until the first error, handing each chunk to fill.
func (t *TTY) readLoop() {
	buf := make([]byte, readChunk)
	for {
		n, err := t.tty.Read(buf)
		var r readResult
		if n > 0 {
			r.data = make([]byte, n)
			copy(r.data, buf[:n])
		}
		r.err = err
		if n == 0 && err == nil {
			continue
		}
		select {
		case t.reads <- r:
		case <-t.done:
			return
		}
		if err != nil {
			return
		}
	}
}

// NextByte returns the next translated input byte, blocking on the terminal
// when nothing is buffered.
func (t *TTY) NextByte() (byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for len(t.pending) == 0 {
		if len(t.strokes) == 0 {
			if t.err != nil {
				return 0, t.err
			}
			if err := t.fill(); err != nil {
				return 0, err
			}
			continue
		}
		t.pending = t.strokes[0].Bytes
		t.mods = t.strokes[0].Modifiers
		t.strokes = t.strokes[1:]
	}
	b := t.pending[0]
	t.pending = t.pending[1:]
	return b, nil
}

// fill waits for the next chunk. While an unfinished escape sequence is
// held, it waits at most escTimeout before flushing it.
func (t *TTY) fill() error {
	if t.closed.Load() {
		return ErrClosed
	}

	var timeout <-chan time.Time
	if len(t.partial) > 0 {
		timer := time.NewTimer(t.escTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case r := <-t.reads:
		if len(r.data) > 0 {
			strokes, rest := translatePartial(append(t.partial, r.data...))
			t.strokes = append(t.strokes, strokes...)
			t.partial = rest
		}
		if r.err != nil {
			t.flushHeld()
			if t.closed.Load() {
				t.err = ErrClosed
			} else {
				t.err = fmt.Errorf("read tty: %w", r.err)
			}
		}
	case <-timeout:
		t.flushHeld()
	case <-t.done:
		return ErrClosed
	}
	return nil
}

func (t *TTY) flushHeld() {
	t.strokes = append(t.strokes, flushPartial(t.partial)...)
	t.partial = nil
}

// IsModifierPressed reports whether mod was held for the last key sequence.
func (t *TTY) IsModifierPressed(mod key.Modifier) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mods.Has(mod)
}

// CopyToClipboard copies text to the system clipboard. Failures are logged.
func (t *TTY) CopyToClipboard(text string) {
	if err := t.copyText(text); err != nil {
		t.logger.Warn("clipboard copy failed", "error", err, "bytes", len(text))
	}
}

// Write writes terminal output.
func (t *TTY) Write(p []byte) (int, error) {
	return t.tty.Write(p)
}

// Resized reports whether the terminal was resized since the last call.
func (t *TTY) Resized() bool {
	return t.resized.Swap(false)
}

// WindowSize returns the terminal size in cells.
func (t *TTY) WindowSize() (width, height int, err error) {
	ws, err := t.tty.WindowSize()
	if err != nil {
		return 0, 0, fmt.Errorf("window size: %w", err)
	}
	return ws.Width, ws.Height, nil
}

// Close restores the terminal mode and closes the tty. A blocked NextByte
// returns ErrClosed.
func (t *TTY) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	close(t.done)
	t.tty.NotifyResize(nil)
	return errors.Join(t.tty.Drain(), t.tty.Stop(), t.tty.Close())
}
