package handlers

import (
	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/input/key"
)

// Mode toggles between edit and command mode on Escape.
type Mode struct{}

// Name implements dispatcher.Handler.
func (Mode) Name() string { return "mode" }

// TryApply implements dispatcher.Handler.
func (Mode) TryApply(ev key.Event, st *editor.State) bool {
	if ev.Key != key.KeyEscape {
		return false
	}
	st.ToggleMode()
	return true
}
