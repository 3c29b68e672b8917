package handlers

import (
	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/input"
	"github.com/dshills/quill/internal/input/key"
)

// Move moves the cursor on arrow keys. Shift extends the selection while
// moving and any other movement drops it; Ctrl moves by words horizontally.
// Ctrl with a vertical arrow does not move the cursor.
type Move struct {
	mods input.ModifierState
}

// NewMove creates a movement handler reading modifiers from mods.
func NewMove(mods input.ModifierState) *Move {
	return &Move{mods: mods}
}

// Name implements dispatcher.Handler.
func (*Move) Name() string { return "move" }

// TryApply implements dispatcher.Handler.
func (m *Move) TryApply(ev key.Event, st *editor.State) bool {
	if !ev.Key.IsArrow() {
		return false
	}

	ctrl := m.mods.IsModifierPressed(key.ModCtrl)
	shift := m.mods.IsModifierPressed(key.ModShift)
	buf := st.Buffer()

	if shift {
		st.BeginSelection()
	} else {
		st.ClearSelection()
	}

	switch ev.Key {
	case key.KeyUp:
		if !ctrl {
			buf.PrevLine()
		}
	case key.KeyDown:
		if !ctrl {
			buf.NextLine()
		}
	case key.KeyLeft:
		if ctrl {
			buf.PrevWord()
		} else {
			buf.PrevChar()
		}
	case key.KeyRight:
		if ctrl {
			buf.NextWord()
		} else {
			buf.NextChar()
		}
	}

	if shift {
		st.ExtendSelection()
	}
	return true
}
