package editor

// Mode is the editing mode.
type Mode uint8

const (
	// ModeEdit inserts typed characters into the buffer.
	ModeEdit Mode = iota
	// ModeCommand interprets typed characters as commands.
	ModeCommand
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "command"
	default:
		return "edit"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeEdit {
		return ModeCommand
	}
	return ModeEdit
}

// ExitRequest tracks the two-step exit confirmation.
//
// The progression is ExitNone -> ExitPending -> ExitConfirmed. A pending
// request returns to ExitNone when any other input arrives; ExitConfirmed
// is terminal.
type ExitRequest uint8

const (
	ExitNone ExitRequest = iota
	ExitPending
	ExitConfirmed
)

// String returns the exit request name.
func (e ExitRequest) String() string {
	switch e {
	case ExitPending:
		return "pending"
	case ExitConfirmed:
		return "confirmed"
	default:
		return "none"
	}
}
