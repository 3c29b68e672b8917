package backend

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dshills/quill/internal/renderer/style"
)

// ClearScreen erases the whole terminal.
const ClearScreen = "\x1b[2J"

// Terminal renders frames to a terminal through a pending and a shown grid.
//
// Write, DrawRect and Clear modify only the pending grid. Flush sends the
// difference between pending and shown to the terminal and updates shown to
// match. Terminal is owned by the editor loop and is not safe for concurrent
// use.
type Terminal struct {
	out   io.Writer
	theme *style.Theme

	pending *Grid
	shown   *Grid

	// Logical write cursor, also where the visible cursor is left after Flush.
	cursorX int
	cursorY int

	frame bytes.Buffer
}

// NewTerminal creates a zero-sized terminal writing to out.
func NewTerminal(out io.Writer, theme *style.Theme) *Terminal {
	if theme == nil {
		theme = style.DefaultTheme()
	}
	return &Terminal{
		out:     out,
		theme:   theme,
		pending: NewGrid(0, 0),
		shown:   NewGrid(0, 0),
	}
}

// Size returns the terminal dimensions.
func (t *Terminal) Size() (width, height int) {
	return t.pending.Size()
}

// SetSize resizes the pending grid and blanks it. The next Flush clears the
// screen and redraws every cell.
func (t *Terminal) SetSize(width, height int) {
	t.pending.Resize(width, height)
}

// Theme returns the theme used to render colors.
func (t *Terminal) Theme() *style.Theme {
	return t.theme
}

// SetCursor moves the logical write cursor.
func (t *Terminal) SetCursor(x, y int) {
	t.cursorX = x
	t.cursorY = y
}

// Cursor returns the logical write cursor.
func (t *Terminal) Cursor() (x, y int) {
	return t.cursorX, t.cursorY
}

// Write draws text at the write cursor, stopping at the first '\n' or the
// right edge, and advances the cursor past what was drawn. It returns the
// number of cells drawn.
func (t *Terminal) Write(color style.Color, text string) int {
	n := t.pending.WriteString(t.cursorX, t.cursorY, color, text)
	t.cursorX += n
	return n
}

// DrawRect fills a rectangle of the pending grid with blanks in color.
func (t *Terminal) DrawRect(color style.Color, x, y, w, h int) {
	t.pending.Fill(color, x, y, w, h)
}

// Clear blanks the pending grid.
func (t *Terminal) Clear() {
	t.pending.Reset()
}

// Pending returns the cell that will be shown at (x, y) after the next Flush.
func (t *Terminal) Pending(x, y int) Cell {
	return t.pending.Cell(x, y)
}

// Flush sends the pending frame to the terminal.
//
// When the dimensions changed since the last Flush the screen is cleared and
// every cell is considered stale. Each differing cell is emitted as an
// optional color change, a cursor position and the character; a color is
// only emitted when it differs from the previous one in the frame. The frame
// ends with a reset when needed and positions the cursor at the write cursor.
func (t *Terminal) Flush() error {
	t.frame.Reset()

	w, h := t.pending.Size()
	if sw, sh := t.shown.Size(); sw != w || sh != h {
		t.shown.Resize(w, h)
		t.frame.WriteString(ClearScreen)
	}

	current := style.Reset
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			next := t.pending.cells[x+w*y]
			if next == t.shown.cells[x+w*y] {
				continue
			}
			if !sameSequence(current, next.Color) {
				t.frame.WriteString(t.theme.Sequence(next.Color))
				current = next.Color
			}
			writeCursorPosition(&t.frame, x, y)
			t.frame.WriteByte(next.Ch)
			t.shown.cells[x+w*y] = next
		}
	}

	if !current.IsReset() {
		t.frame.WriteString(style.ResetSequence)
	}
	writeCursorPosition(&t.frame, t.cursorX, t.cursorY)

	if _, err := t.out.Write(t.frame.Bytes()); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// sameSequence returns true if switching from a to b needs no escape.
func sameSequence(a, b style.Color) bool {
	return a == b || (a.IsReset() && b.IsReset())
}

// writeCursorPosition writes a 1-based cursor position for 0-based (x, y).
func writeCursorPosition(buf *bytes.Buffer, x, y int) {
	fmt.Fprintf(buf, "\x1b[%d;%dH", y+1, x+1)
}
