package dispatcher

import (
	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/input/key"
)

// Handler reacts to key events.
type Handler interface {
	// Name identifies the handler in logs and metrics.
	Name() string

	// TryApply applies the handler to ev and returns true if it claimed the
	// event. The state must not be retained past the call.
	TryApply(ev key.Event, st *editor.State) bool
}
