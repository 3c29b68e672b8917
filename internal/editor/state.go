// Package editor holds the state the input handlers mutate: the buffer, the
// selection, the editing mode, the exit confirmation, the status message and
// the viewport.
package editor

import (
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/renderer/viewport"
)

// State is the complete editor state. It is owned by the editor loop and
// passed by pointer to each handler invocation.
type State struct {
	buf  *buffer.Buffer
	view *viewport.Viewport

	selection    buffer.Range
	hasSelection bool

	mode      Mode
	exit      ExitRequest
	status    Status
	transient bool
}

// New creates a state with an empty buffer in edit mode.
func New() *State {
	return &State{
		buf:    buffer.New(),
		view:   viewport.New(1, 1),
		status: StatusIdle{},
	}
}

// Buffer returns the buffer being edited.
func (s *State) Buffer() *buffer.Buffer {
	return s.buf
}

// View returns the viewport.
func (s *State) View() *viewport.Viewport {
	return s.view
}

// Mode returns the editing mode.
func (s *State) Mode() Mode {
	return s.mode
}

// ToggleMode switches between edit and command mode.
func (s *State) ToggleMode() {
	s.mode = s.mode.Toggle()
}

// Exit returns the exit request state.
func (s *State) Exit() ExitRequest {
	return s.exit
}

// RequestExit advances the exit confirmation: the first request makes it
// pending, the second confirms it.
func (s *State) RequestExit() {
	switch s.exit {
	case ExitNone:
		s.exit = ExitPending
	case ExitPending:
		s.exit = ExitConfirmed
	}
}

// CancelExit drops a pending exit request. A confirmed exit stays confirmed.
func (s *State) CancelExit() {
	if s.exit == ExitPending {
		s.exit = ExitNone
	}
}

// IsExitPending returns true while an exit waits for confirmation.
func (s *State) IsExitPending() bool {
	return s.exit == ExitPending
}

// IsExitConfirmed returns true once exit has been confirmed.
func (s *State) IsExitConfirmed() bool {
	return s.exit == ExitConfirmed
}

// Status returns the current status message.
func (s *State) Status() Status {
	return s.status
}

// ResetStatus clears the status message.
func (s *State) ResetStatus() {
	s.status = StatusIdle{}
}

// SetInfo sets an informational status message.
func (s *State) SetInfo(msg string) {
	s.status = StatusInfo{Message: msg}
}

// SetError sets an error status message.
func (s *State) SetError(msg string) {
	s.status = StatusError{Message: msg}
}

// IsTransient returns true if the buffer must not be saved on exit.
func (s *State) IsTransient() bool {
	return s.transient
}

// SetTransient marks the buffer as transient.
func (s *State) SetTransient(v bool) {
	s.transient = v
}
