package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/quill/internal/renderer/style"
)

func colorsIn(h *Highlighter, text string) map[style.Color]bool {
	seen := make(map[style.Color]bool)
	for _, s := range h.Spans(text) {
		seen[s.Color] = true
	}
	return seen
}

func TestNewByLanguage(t *testing.T) {
	h := New("lua", "")

	require.NotNil(t, h)
	assert.Equal(t, "Lua", h.Language())
}

func TestNewByFilename(t *testing.T) {
	h := New("", "demo.lua")

	require.NotNil(t, h)
	assert.Equal(t, "Lua", h.Language())
}

func TestNewUnknown(t *testing.T) {
	assert.Nil(t, New("no-such-language", ""))
	assert.Nil(t, New("", ""))
}

func TestNilHighlighter(t *testing.T) {
	var h *Highlighter

	assert.Nil(t, h.Spans("local x = 1"))
	assert.Equal(t, "", h.Language())
}

func TestLuaSpans(t *testing.T) {
	h := New("lua", "")
	text := "local x = 42 -- answer\nprint(\"hi\")"

	seen := colorsIn(h, text)

	assert.True(t, seen[style.EditorKeyword], "keyword")
	assert.True(t, seen[style.EditorNumber], "number")
	assert.True(t, seen[style.EditorComment], "comment")
	assert.True(t, seen[style.EditorString], "string")
}

func TestSpansWithinText(t *testing.T) {
	h := New("lua", "")
	text := "-- no trailing newline"

	spans := h.Spans(text)

	require.NotEmpty(t, spans)
	prev := 0
	for _, s := range spans {
		assert.GreaterOrEqual(t, s.Range.Start, prev)
		assert.LessOrEqual(t, s.Range.End, len(text))
		prev = s.Range.End
	}
	assert.Equal(t, style.EditorComment, spans[0].Color)
	assert.Equal(t, 0, spans[0].Range.Start)
}

func TestSpansCachedUntilTextChanges(t *testing.T) {
	h := New("lua", "")

	first := h.Spans("return 1")
	again := h.Spans("return 1")
	assert.Equal(t, first, again)

	other := h.Spans("-- c")
	require.NotEmpty(t, other)
	assert.Equal(t, style.EditorComment, other[0].Color)
}
