// Package backend provides the differential terminal renderer.
//
// Drawing goes to a pending Grid. Flush compares it with the Grid last sent
// to the terminal and emits escape sequences only for the cells that
// differ, then writes the whole frame in a single call.
package backend

import "github.com/dshills/quill/internal/renderer/style"

// Cell is one screen cell.
type Cell struct {
	Ch    byte
	Color style.Color
}

// EmptyCell is a blank cell in the default color.
func EmptyCell() Cell {
	return Cell{Ch: ' ', Color: style.Default}
}

// Grid is a width*height array of cells indexed x + width*y.
// Accesses outside the grid are ignored.
type Grid struct {
	width, height int
	cells         []Cell
}

// NewGrid creates a blank grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Resize changes the dimensions and blanks every cell.
func (g *Grid) Resize(width, height int) {
	g.width = max(width, 0)
	g.height = max(height, 0)
	g.cells = make([]Cell, g.width*g.height)
	g.Reset()
}

// Reset blanks every cell.
func (g *Grid) Reset() {
	empty := EmptyCell()
	for i := range g.cells {
		g.cells[i] = empty
	}
}

// InBounds returns true if (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the cell at (x, y), or an empty cell outside the grid.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return EmptyCell()
	}
	return g.cells[x+g.width*y]
}

// SetCell sets the cell at (x, y). Out-of-bounds writes are dropped.
func (g *Grid) SetCell(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[x+g.width*y] = c
}

// WriteString writes text on row y starting at column x, stopping at the
// first '\n' or the right edge. Other control bytes are written as
// printable placeholders. It returns the number of cells written, which is
// 0 when (x, y) is outside the grid.
func (g *Grid) WriteString(x, y int, color style.Color, text string) int {
	if !g.InBounds(x, y) {
		return 0
	}
	n := len(text)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			n = i
			break
		}
	}
	n = min(n, g.width-x)

	start := x + g.width*y
	for i := 0; i < n; i++ {
		g.cells[start+i] = Cell{Ch: printable(text[i]), Color: color}
	}
	return n
}

// printable maps a byte that would drive the terminal to one that is shown.
func printable(b byte) byte {
	switch {
	case b == '\t':
		return ' '
	case b < 0x20, b == 0x7f:
		return '?'
	}
	return b
}

// Fill sets every cell of the rectangle, clipped to the grid, to a blank in
// the given color.
func (g *Grid) Fill(color style.Color, x, y, w, h int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, g.width), min(y+h, g.height)
	blank := Cell{Ch: ' ', Color: color}
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			g.cells[col+g.width*row] = blank
		}
	}
}
