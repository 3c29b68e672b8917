package backend

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/quill/internal/input"
)

func TestQuerySize(t *testing.T) {
	var out bytes.Buffer
	src := input.NewByteScript([]byte("\x1b[24;80R")...)

	w, h, err := QuerySize(&out, src)

	require.NoError(t, err)
	assert.Equal(t, 79, w)
	assert.Equal(t, 23, h)
	assert.Equal(t, "\x1b[999;999H\x1b[6n", out.String())
}

func TestParseCursorReportMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing escape", "[24;80R"},
		{"missing bracket", "\x1b24;80R"},
		{"letters", "\x1b[ab;80R"},
		{"wrong separator", "\x1b[24,80R"},
		{"empty row", "\x1b[;80R"},
		{"zero row", "\x1b[0;80R"},
		{"too many digits", "\x1b[1234567;80R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseCursorReport(input.NewByteScript([]byte(tt.input)...))

			assert.ErrorIs(t, err, ErrMalformedReport)
			var rerr *ReportError
			assert.ErrorAs(t, err, &rerr)
		})
	}
}

func TestParseCursorReportTruncated(t *testing.T) {
	_, _, err := ParseCursorReport(input.NewByteScript([]byte("\x1b[24;8")...))

	assert.ErrorIs(t, err, io.EOF)
	assert.NotErrorIs(t, err, ErrMalformedReport)
}

func TestGridWriteString(t *testing.T) {
	g := NewGrid(4, 2)

	assert.Equal(t, 3, g.WriteString(1, 1, 0, "xyz!"))
	assert.Equal(t, byte('z'), g.Cell(3, 1).Ch)
	assert.Equal(t, 0, g.WriteString(4, 0, 0, "a"))
	assert.Equal(t, EmptyCell(), g.Cell(9, 9))
}

func TestGridResizeBlanks(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetCell(1, 1, Cell{Ch: 'q'})

	g.Resize(3, 1)

	w, h := g.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, EmptyCell(), g.Cell(1, 0))
}
