package handlers

import (
	"github.com/dshills/quill/internal/dispatcher"
	"github.com/dshills/quill/internal/input"
)

// Default returns the editor's handlers in dispatch order.
func Default(src input.Source, cmd CommandConfig) []dispatcher.Handler {
	return []dispatcher.Handler{
		Exit{},
		NewClipboard(src),
		Mode{},
		NewCommand(cmd),
		NewMove(src),
		Write{},
		Delete{},
		SelectAll{},
	}
}
