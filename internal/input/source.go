package input

import "github.com/dshills/quill/internal/input/key"

// ModifierState reports whether a modifier key is held for the most
// recently delivered key.
type ModifierState interface {
	IsModifierPressed(mod key.Modifier) bool
}

// Clipboard receives copied text. Copying is best effort; implementations
// log failures rather than report them.
type Clipboard interface {
	CopyToClipboard(text string)
}

// Source is the platform input source: raw bytes, modifier state and the
// clipboard.
type Source interface {
	key.ByteSource
	ModifierState
	Clipboard
}
