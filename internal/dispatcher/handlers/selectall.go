package handlers

import (
	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/input/key"
)

// SelectAll selects the whole buffer on Ctrl-A.
type SelectAll struct{}

// Name implements dispatcher.Handler.
func (SelectAll) Name() string { return "select-all" }

// TryApply implements dispatcher.Handler.
func (SelectAll) TryApply(ev key.Event, st *editor.State) bool {
	if ev.Key != key.KeySelectAll {
		return false
	}
	st.SelectAll()
	return true
}
