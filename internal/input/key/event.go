package key

import "fmt"

// Event is a single decoded key press.
type Event struct {
	// Key identifies the key.
	Key Key

	// Char is the literal byte for KeyChar events; zero otherwise.
	Char byte
}

// NewCharEvent creates a literal character event.
func NewCharEvent(c byte) Event {
	return Event{Key: KeyChar, Char: c}
}

// NewSpecialEvent creates an event for a non-character key.
func NewSpecialEvent(k Key) Event {
	return Event{Key: k}
}

// IsChar returns true if this is a literal character event.
func (e Event) IsChar() bool {
	return e.Key == KeyChar
}

// IsPrintable returns true for printable ASCII characters and newline,
// the only characters the editor inserts.
func (e Event) IsPrintable() bool {
	if !e.IsChar() {
		return false
	}
	return e.Char == '\n' || (e.Char >= 32 && e.Char <= 126)
}

// String returns a human-readable representation like "Char('a')" or "Up".
func (e Event) String() string {
	if e.IsChar() {
		return fmt.Sprintf("Char(%q)", rune(e.Char))
	}
	return e.Key.String()
}
