package key

// Key identifies a decoded key.
// Literal characters use KeyChar and carry the byte in Event.Char.
type Key uint8

const (
	// KeyUnknown is an unrecognized two-byte sequence.
	KeyUnknown Key = iota

	// KeyChar is a literal character.
	KeyChar

	// Control keys
	KeyExit      // Ctrl-C
	KeyCancel    // Ctrl-X
	KeySelectAll // Ctrl-A
	KeyBackspace
	KeyEscape
	KeyDelete

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Raw byte values recognized by the decoder.
const (
	ByteSelectAll byte = 1
	ByteExit      byte = 3
	ByteBackspace byte = 8
	ByteReturn    byte = 13
	ByteCancel    byte = 24
	ByteEscape    byte = 27

	// BytePrefix introduces a two-byte special key sequence.
	BytePrefix byte = 224

	ByteUp         byte = 72
	ByteDown       byte = 80
	ByteLeft       byte = 75
	ByteRight      byte = 77
	ByteCtrlLeft   byte = 115
	ByteCtrlRight  byte = 116
	ByteDeleteCode byte = 83
)

var keyNames = [...]string{
	KeyUnknown:   "Unknown",
	KeyChar:      "Char",
	KeyExit:      "Exit",
	KeyCancel:    "Cancel",
	KeySelectAll: "SelectAll",
	KeyBackspace: "Backspace",
	KeyEscape:    "Escape",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
}

// String returns the key name.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// IsArrow returns true for the four arrow keys.
func (k Key) IsArrow() bool {
	return k >= KeyUp && k <= KeyRight
}
