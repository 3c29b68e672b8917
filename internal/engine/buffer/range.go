package buffer

import "fmt"

// Range represents a byte range in the buffer.
// Start is inclusive, End is exclusive: [Start, End).
//
// A Range may be stale relative to the buffer it was taken from; use Clamp
// before indexing content with it.
type Range struct {
	Start int // Inclusive start offset
	End   int // Exclusive end offset
}

// NewRange creates a new Range from start and end offsets.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Len() == 0
}

// Clamp limits the range to a text of the given length.
// The result satisfies 0 <= Start <= End <= length, with
// Start = min(Start, length) and End = clamp(End, Start, length).
func (r Range) Clamp(length int) Range {
	if length < 0 {
		length = 0
	}
	start := min(max(r.Start, 0), length)
	end := min(max(r.End, start), length)
	return Range{Start: start, End: end}
}
