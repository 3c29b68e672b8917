package editor

import "github.com/dshills/quill/internal/engine/buffer"

// HasSelection returns true if a selection exists. A selection may be empty.
func (s *State) HasSelection() bool {
	return s.hasSelection
}

// Selection returns the selection clamped to the current buffer.
func (s *State) Selection() (buffer.Range, bool) {
	if !s.hasSelection {
		return buffer.Range{}, false
	}
	return s.selection.Clamp(s.buf.Len()), true
}

// SelectionText returns the selected text, or "" without a selection.
func (s *State) SelectionText() string {
	r, ok := s.Selection()
	if !ok {
		return ""
	}
	return s.buf.Slice(r)
}

// BeginSelection starts an empty selection at the insertion index unless a
// selection already exists.
func (s *State) BeginSelection() {
	if s.hasSelection {
		return
	}
	i := s.buf.InsertionIndex()
	s.selection = buffer.NewRange(i, i).Clamp(s.buf.Len())
	s.hasSelection = true
}

// ExtendSelection grows the selection towards the insertion index. An index
// before the selection moves its start there; any other index moves its end
// to one past the index. Without a selection it behaves as BeginSelection.
func (s *State) ExtendSelection() {
	if !s.hasSelection {
		s.BeginSelection()
		return
	}
	i := s.buf.InsertionIndex()
	if i < s.selection.Start {
		s.selection.Start = i
	} else {
		s.selection.End = i + 1
	}
	s.selection = s.selection.Clamp(s.buf.Len())
}

// SelectAll selects the whole buffer and leaves the cursor at its end.
func (s *State) SelectAll() {
	s.buf.SetInsertionIndex(0)
	s.ClearSelection()
	s.BeginSelection()
	s.buf.SetInsertionIndex(s.buf.Len())
	s.ExtendSelection()
}

// ClearSelection drops the selection without touching the text.
func (s *State) ClearSelection() {
	s.selection = buffer.Range{}
	s.hasSelection = false
}

// DeleteSelection deletes the selected text, moves the cursor to where it
// started and clears the selection. Without a selection it does nothing.
func (s *State) DeleteSelection() {
	r, ok := s.Selection()
	if !ok {
		return
	}
	s.buf.DeleteRange(r)
	s.ClearSelection()
}
