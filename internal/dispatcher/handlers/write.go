package handlers

import (
	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/input/key"
)

// Write inserts printable characters in edit mode, replacing any selection.
// Only printable ASCII and newline are accepted so that every other byte
// occupies exactly one cell.
type Write struct{}

// Name implements dispatcher.Handler.
func (Write) Name() string { return "write" }

// TryApply implements dispatcher.Handler.
func (Write) TryApply(ev key.Event, st *editor.State) bool {
	if !ev.IsChar() || st.Mode() != editor.ModeEdit || !ev.IsPrintable() {
		return false
	}
	st.DeleteSelection()
	st.Buffer().WriteChar(ev.Char)
	return true
}
