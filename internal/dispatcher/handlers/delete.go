package handlers

import (
	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/input/key"
)

// Delete handles Backspace and Delete. Either key removes the selection if
// there is one; otherwise Backspace removes the previous character and
// Delete the next.
type Delete struct{}

// Name implements dispatcher.Handler.
func (Delete) Name() string { return "delete" }

// TryApply implements dispatcher.Handler.
func (Delete) TryApply(ev key.Event, st *editor.State) bool {
	switch ev.Key {
	case key.KeyBackspace, key.KeyDelete:
	default:
		return false
	}

	if st.HasSelection() {
		st.DeleteSelection()
		return true
	}
	if ev.Key == key.KeyBackspace {
		st.Buffer().DeletePrevChar()
	} else {
		st.Buffer().DeleteNextChar()
	}
	return true
}
