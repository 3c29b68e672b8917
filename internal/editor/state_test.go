package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/quill/internal/engine/buffer"
)

func newState(text string) *State {
	s := New()
	s.Buffer().SetContent(text)
	return s
}

func TestNewState(t *testing.T) {
	s := New()

	assert.Equal(t, ModeEdit, s.Mode())
	assert.Equal(t, ExitNone, s.Exit())
	assert.Equal(t, StatusIdle{}, s.Status())
	assert.False(t, s.HasSelection())
	assert.False(t, s.IsTransient())
	assert.True(t, s.Buffer().IsEmpty())
}

func TestToggleMode(t *testing.T) {
	s := New()

	s.ToggleMode()
	assert.Equal(t, ModeCommand, s.Mode())

	s.ToggleMode()
	assert.Equal(t, ModeEdit, s.Mode())
}

func TestExitStateMachine(t *testing.T) {
	s := New()

	s.RequestExit()
	assert.True(t, s.IsExitPending())

	s.CancelExit()
	assert.Equal(t, ExitNone, s.Exit())

	s.RequestExit()
	s.RequestExit()
	assert.True(t, s.IsExitConfirmed())

	s.CancelExit()
	s.RequestExit()
	assert.True(t, s.IsExitConfirmed(), "confirmed is terminal")
}

func TestStatus(t *testing.T) {
	s := New()

	s.SetError("disk full")
	assert.Equal(t, StatusError{Message: "disk full"}, s.Status())

	s.SetInfo("saved")
	assert.Equal(t, StatusInfo{Message: "saved"}, s.Status())

	s.ResetStatus()
	assert.Equal(t, StatusIdle{}, s.Status())
}

func TestSelectAll(t *testing.T) {
	s := newState("ab\ncd")

	s.SelectAll()

	r, ok := s.Selection()
	require.True(t, ok)
	assert.Equal(t, buffer.NewRange(0, 5), r)
	assert.Equal(t, 5, s.Buffer().InsertionIndex())
	assert.Equal(t, "ab\ncd", s.SelectionText())
}

func TestSelectAllThenDelete(t *testing.T) {
	s := newState("ab\ncd")

	s.SelectAll()
	s.DeleteSelection()

	assert.Equal(t, "", s.Buffer().Text())
	assert.Equal(t, 0, s.Buffer().InsertionIndex())
	assert.False(t, s.HasSelection())
}

func TestBeginSelectionKeepsExisting(t *testing.T) {
	s := newState("hello")
	s.Buffer().SetInsertionIndex(1)
	s.BeginSelection()

	s.Buffer().SetInsertionIndex(3)
	s.BeginSelection()

	r, _ := s.Selection()
	assert.Equal(t, buffer.NewRange(1, 1), r)
}

func TestExtendSelectionAsymmetry(t *testing.T) {
	s := newState("hello world")
	s.Buffer().SetInsertionIndex(4)
	s.BeginSelection()

	s.Buffer().SetInsertionIndex(6)
	s.ExtendSelection()
	r, _ := s.Selection()
	assert.Equal(t, buffer.NewRange(4, 7), r, "forward extension includes the byte at the index")

	s.Buffer().SetInsertionIndex(2)
	s.ExtendSelection()
	r, _ = s.Selection()
	assert.Equal(t, buffer.NewRange(2, 7), r, "backward extension moves the start only")
}

func TestExtendSelectionWithoutSelectionBegins(t *testing.T) {
	s := newState("hello")
	s.Buffer().SetInsertionIndex(2)

	s.ExtendSelection()

	r, ok := s.Selection()
	require.True(t, ok)
	assert.Equal(t, buffer.NewRange(2, 2), r)
}

func TestSelectionClampedAfterEdit(t *testing.T) {
	s := newState("hello world")
	s.SelectAll()

	s.Buffer().SetContent("hi")

	r, ok := s.Selection()
	require.True(t, ok)
	assert.Equal(t, buffer.NewRange(0, 2), r)
	assert.Equal(t, "hi", s.SelectionText())
}

func TestDeleteSelectionWithoutSelection(t *testing.T) {
	s := newState("abc")

	s.DeleteSelection()

	assert.Equal(t, "abc", s.Buffer().Text())
}

func TestPropertySelectionWithinBuffer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newState(rapid.StringMatching(`[a-z\n]{0,30}`).Draw(t, "text"))
		steps := rapid.IntRange(1, 25).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 5).Draw(t, "op") {
			case 0:
				s.Buffer().SetInsertionIndex(rapid.IntRange(0, 40).Draw(t, "index"))
			case 1:
				s.BeginSelection()
			case 2:
				s.ExtendSelection()
			case 3:
				s.DeleteSelection()
			case 4:
				s.SelectAll()
			case 5:
				s.Buffer().WriteChar('x')
			}
			if r, ok := s.Selection(); ok {
				if r.Start < 0 || r.Start > r.End || r.End > s.Buffer().Len() {
					t.Fatalf("selection %v outside buffer of length %d", r, s.Buffer().Len())
				}
			}
		}
	})
}
