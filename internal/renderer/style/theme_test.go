package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceFormat(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "\x1b[38;2;180;180;180;48;2;25;25;25m", theme.Sequence(EditorContent))
	assert.Equal(t, "\x1b[38;2;220;220;220;48;2;127;32;176m", theme.Sequence(HeaderFilename))
}

func TestResetColorsRenderReset(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, ResetSequence, theme.Sequence(Reset))
	assert.Equal(t, ResetSequence, theme.Sequence(Default))
	assert.Equal(t, ResetSequence, theme.Sequence(Color(250)))
}

func TestEveryColorHasSequence(t *testing.T) {
	theme := DefaultTheme()

	for _, c := range Colors() {
		assert.NotEmpty(t, theme.Sequence(c), c.String())
	}
}

func TestOverride(t *testing.T) {
	theme := DefaultTheme()

	require.NoError(t, theme.Override("editor_content", "#ffffff", ""))
	assert.Equal(t, "\x1b[38;2;255;255;255;48;2;25;25;25m", theme.Sequence(EditorContent))

	require.NoError(t, theme.Override("editor_content", "", "#000000"))
	assert.Equal(t, "\x1b[38;2;255;255;255;48;2;0;0;0m", theme.Sequence(EditorContent))
}

func TestOverrideErrors(t *testing.T) {
	theme := DefaultTheme()

	err := theme.Override("nope", "#ffffff", "")
	assert.ErrorIs(t, err, ErrUnknownColor)

	err = theme.Override("footer", "not-a-color", "")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("footer_status_error")
	assert.True(t, ok)
	assert.Equal(t, FooterStatusError, c)
	assert.Equal(t, "footer_status_error", c.String())

	_, ok = ParseColor("missing")
	assert.False(t, ok)
}
