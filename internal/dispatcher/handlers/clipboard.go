package handlers

import (
	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/input"
	"github.com/dshills/quill/internal/input/key"
)

// Clipboard copies the selection on Exit and cuts it on Cancel. Pasting is
// left to the terminal.
type Clipboard struct {
	clip input.Clipboard
}

// NewClipboard creates a clipboard handler copying to clip.
func NewClipboard(clip input.Clipboard) *Clipboard {
	return &Clipboard{clip: clip}
}

// Name implements dispatcher.Handler.
func (*Clipboard) Name() string { return "clipboard" }

// TryApply implements dispatcher.Handler.
func (c *Clipboard) TryApply(ev key.Event, st *editor.State) bool {
	if !st.HasSelection() {
		return false
	}
	switch ev.Key {
	case key.KeyExit:
		c.clip.CopyToClipboard(st.SelectionText())
		return true
	case key.KeyCancel:
		c.clip.CopyToClipboard(st.SelectionText())
		st.DeleteSelection()
		return true
	}
	return false
}
