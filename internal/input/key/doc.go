// Package key turns raw keyboard bytes into editor input events.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: identifies a special key, or KeyChar for a literal byte
//   - Event: a single decoded key press
//   - Modifier: a modifier key whose state is queried from the input source
//   - Decoder: the byte-level automaton that produces Events
//
// # Byte Encoding
//
// The decoder consumes a console-style byte stream. Control bytes map to
// special keys (3 is Exit, 24 is Cancel, 1 is SelectAll, 8 is Backspace,
// 27 is Escape), carriage return becomes a '\n' character, and the byte 224
// introduces a two-byte arrow/delete sequence. Every other byte is a literal
// character.
//
// Modifier keys are not part of the byte stream; handlers ask the input
// source whether a modifier is held when they need to.
package key
