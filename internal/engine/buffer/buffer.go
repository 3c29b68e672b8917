package buffer

import (
	"bytes"
	"iter"
)

// Buffer holds the text being edited together with an insertion index and
// a desired column.
//
// The insertion index is always clamped to [0, Len()] before it is used for
// an edit, so a stale index (for example after SetContent) never causes an
// out-of-range access.
type Buffer struct {
	text       []byte
	insertion  int
	desiredCol int
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewFromString creates a buffer holding text with the insertion index at 0.
func NewFromString(text string) *Buffer {
	b := New()
	b.SetContent(text)
	return b
}

// SetContent replaces the whole text. The insertion index is left as is and
// is clamped on its next use.
func (b *Buffer) SetContent(text string) {
	b.text = append(b.text[:0], text...)
}

// Text returns the complete text.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Len returns the length of the text in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.text) == 0
}

// Slice returns the text covered by r after clamping it to the buffer.
func (b *Buffer) Slice(r Range) string {
	r = r.Clamp(len(b.text))
	return string(b.text[r.Start:r.End])
}

// InsertionIndex returns the insertion index, clamped to the text.
func (b *Buffer) InsertionIndex() int {
	return min(max(b.insertion, 0), len(b.text))
}

// SetInsertionIndex moves the insertion index. Values outside the text are
// clamped.
func (b *Buffer) SetInsertionIndex(i int) {
	b.insertion = min(max(i, 0), len(b.text))
}

// DesiredColumn returns the column vertical movement tries to keep.
func (b *Buffer) DesiredColumn() int {
	return b.desiredCol
}

// Write inserts ch at the insertion index. The index does not move.
func (b *Buffer) Write(ch byte) {
	i := b.clampInsertion()
	b.text = append(b.text, 0)
	copy(b.text[i+1:], b.text[i:])
	b.text[i] = ch
}

// Delete removes up to count bytes starting at the insertion index.
// Deleting at or past the end of the text is a no-op.
func (b *Buffer) Delete(count int) {
	i := b.clampInsertion()
	r := NewRange(i, i+count).Clamp(len(b.text))
	if r.IsEmpty() {
		return
	}
	b.text = append(b.text[:r.Start], b.text[r.End:]...)
}

// Lines returns a lazy sequence over the ranges of each line, excluding the
// '\n' separators. A text ending in '\n' yields a final empty line, and an
// empty text yields a single empty line. The sequence reads the content at
// iteration time and can be ranged over repeatedly.
func (b *Buffer) Lines() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		start := 0
		for {
			n := bytes.IndexByte(b.text[start:], '\n')
			if n < 0 {
				yield(Range{Start: start, End: len(b.text)})
				return
			}
			if !yield(Range{Start: start, End: start + n}) {
				return
			}
			start += n + 1
		}
	}
}

// Line returns the range of line n, or false if the line does not exist.
func (b *Buffer) Line(n int) (Range, bool) {
	if n < 0 {
		return Range{}, false
	}
	i := 0
	for r := range b.Lines() {
		if i == n {
			return r, true
		}
		i++
	}
	return Range{}, false
}

// LineCount returns the number of lines. It is never less than 1.
func (b *Buffer) LineCount() int {
	n := 0
	for range b.Lines() {
		n++
	}
	return n
}

// LineLen returns the length of line n, or 0 if the line does not exist.
func (b *Buffer) LineLen(n int) int {
	r, ok := b.Line(n)
	if !ok {
		return 0
	}
	return r.Len()
}

func (b *Buffer) clampInsertion() int {
	b.insertion = b.InsertionIndex()
	return b.insertion
}
