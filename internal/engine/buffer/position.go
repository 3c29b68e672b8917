package buffer

import "fmt"

// Point represents a line and column position.
// Both Line and Column are 0-indexed; Column is measured in bytes from the
// start of the line.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// OffsetToPoint converts a byte offset into a line/column point.
// Offsets past the end of the text resolve to the end of the text.
func (b *Buffer) OffsetToPoint(offset int) Point {
	var p Point
	for i := 0; i < offset && i < len(b.text); i++ {
		if b.text[i] == '\n' {
			p.Line++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p
}

// PointToOffset converts a line/column point into a byte offset.
// A line past the last one resolves to the end of the text; a column past
// the end of its line resolves to the end of that line.
func (b *Buffer) PointToOffset(line, col int) int {
	r, ok := b.Line(line)
	if !ok {
		return len(b.text)
	}
	return r.Start + min(max(col, 0), r.Len())
}

// CursorPoint returns the insertion index as a line/column point.
func (b *Buffer) CursorPoint() Point {
	return b.OffsetToPoint(b.InsertionIndex())
}

// SetCursorPoint moves the insertion index to the given line and column,
// clamping as PointToOffset does.
func (b *Buffer) SetCursorPoint(line, col int) {
	b.insertion = b.PointToOffset(line, col)
}
