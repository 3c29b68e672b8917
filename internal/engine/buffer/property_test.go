package buffer

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func genText(t *rapid.T) string {
	return rapid.StringMatching(`[a-z \n]{0,40}`).Draw(t, "text")
}

func TestPropertyIndexAlwaysClamped(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewFromString(genText(t))
		ops := rapid.IntRange(0, 30).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			switch rapid.IntRange(0, 9).Draw(t, "op") {
			case 0:
				b.Write(rapid.ByteRange('a', 'z').Draw(t, "ch"))
			case 1:
				b.Delete(rapid.IntRange(-3, 10).Draw(t, "count"))
			case 2:
				b.SetInsertionIndex(rapid.IntRange(-5, 60).Draw(t, "index"))
			case 3:
				b.NextWord()
			case 4:
				b.PrevWord()
			case 5:
				b.NextLine()
			case 6:
				b.PrevLine()
			case 7:
				b.DeletePrevChar()
			case 8:
				b.WriteChar('\n')
			case 9:
				b.SetContent(genText(t))
			}
			if idx := b.InsertionIndex(); idx < 0 || idx > b.Len() {
				t.Fatalf("insertion index %d outside [0, %d]", idx, b.Len())
			}
		}
	})
}

func TestPropertyLinesRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := genText(t)
		b := NewFromString(text)

		var parts []string
		for r := range b.Lines() {
			parts = append(parts, b.Slice(r))
		}
		if got := strings.Join(parts, "\n"); got != text {
			t.Fatalf("expected %q, got %q", text, got)
		}
	})
}

func TestPropertyCursorRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := genText(t)
		b := NewFromString(text)
		offset := rapid.IntRange(0, len(text)).Draw(t, "offset")

		p := b.OffsetToPoint(offset)
		if got := b.PointToOffset(p.Line, p.Column); got != offset {
			t.Fatalf("offset %d -> %v -> %d", offset, p, got)
		}
	})
}

func TestPropertyRangeClamp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := NewRange(rapid.IntRange(-10, 50).Draw(t, "start"), rapid.IntRange(-10, 50).Draw(t, "end"))
		length := rapid.IntRange(0, 40).Draw(t, "length")

		c := r.Clamp(length)
		if c.Start < 0 || c.Start > c.End || c.End > length {
			t.Fatalf("clamp(%v, %d) = %v", r, length, c)
		}
		if c.Clamp(length) != c {
			t.Fatalf("clamp is not idempotent for %v", c)
		}
	})
}
