package handlers

import (
	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/input/key"
)

// Exit confirms an exit on two consecutive Exit presses. The Exit key
// copies instead when a selection exists, so Exit is only claimed without
// one.
//
// Every other event cancels a pending exit before falling through.
type Exit struct{}

// Name implements dispatcher.Handler.
func (Exit) Name() string { return "exit" }

// TryApply implements dispatcher.Handler.
func (Exit) TryApply(ev key.Event, st *editor.State) bool {
	if st.HasSelection() || ev.Key != key.KeyExit {
		st.CancelExit()
		return false
	}
	st.RequestExit()
	return true
}
