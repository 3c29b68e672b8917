// Package viewport provides viewport management for the renderer.
//
// A Viewport tracks the window of the buffer shown on screen and the cursor
// position in buffer coordinates. Update moves the window the minimum
// distance needed to keep the cursor inside it.
package viewport

import (
	"fmt"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Viewport represents the visible portion of the buffer.
//
// Window coordinates are columns (X) and lines (Y) of the buffer. The
// viewport is owned by the editor loop and is not safe for concurrent use.
type Viewport struct {
	// Size in screen cells
	width  int
	height int

	// Position in buffer of the top-left visible cell
	windowX int
	windowY int

	// Cursor in buffer coordinates
	cursorX int
	cursorY int
}

// New creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func New(width, height int) *Viewport {
	v := &Viewport{}
	v.SetSize(width, height)
	return v
}

// SetSize resizes the viewport. The window is not moved until the next
// Update.
func (v *Viewport) SetSize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	return v.height
}

// Window returns the buffer column and line of the top-left visible cell.
func (v *Viewport) Window() (x, y int) {
	return v.windowX, v.windowY
}

// Cursor returns the cursor in buffer coordinates as of the last Update.
func (v *Viewport) Cursor() (x, y int) {
	return v.cursorX, v.cursorY
}

// ScreenCursor returns the cursor relative to the window origin.
func (v *Viewport) ScreenCursor() (x, y int) {
	return v.cursorX - v.windowX, v.cursorY - v.windowY
}

// Update reads the cursor from buf and scrolls the window so the cursor is
// visible. The horizontal extent is the length of the cursor's line and the
// vertical extent is the number of lines.
func (v *Viewport) Update(buf *buffer.Buffer) {
	p := buf.CursorPoint()
	v.cursorX = p.Column
	v.cursorY = p.Line

	v.windowX = scrollAxis(v.windowX, v.width, v.cursorX, buf.LineLen(p.Line))
	v.windowY = scrollAxis(v.windowY, v.height, v.cursorY, buf.LineCount())
}

// String returns a debugging representation of the viewport.
func (v *Viewport) String() string {
	return fmt.Sprintf("viewport{size=%dx%d window=(%d,%d) cursor=(%d,%d)}",
		v.width, v.height, v.windowX, v.windowY, v.cursorX, v.cursorY)
}
