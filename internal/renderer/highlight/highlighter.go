// Package highlight provides syntax highlighting for the renderer.
//
// Highlighting runs a chroma lexer over the whole buffer and reduces its
// token stream to a few editor color roles. Tokens that map to no role are
// left to the content color.
package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/renderer/style"
)

// Span colors a byte range of the text.
type Span struct {
	Range buffer.Range
	Color style.Color
}

// Highlighter produces color spans for a text.
// The zero value and a nil *Highlighter highlight nothing.
type Highlighter struct {
	lexer chroma.Lexer

	// Last highlighted text and its spans.
	text  string
	spans []Span
	valid bool
}

// New creates a highlighter for language, or for the language detected from
// filename when language is empty. It returns nil when no lexer matches.
func New(language, filename string) *Highlighter {
	var lexer chroma.Lexer
	if language != "" {
		lexer = lexers.Get(language)
	} else if filename != "" {
		lexer = lexers.Match(filename)
	}
	if lexer == nil {
		return nil
	}
	return &Highlighter{lexer: chroma.Coalesce(lexer)}
}

// Language returns the lexer name, or "" for a nil highlighter.
func (h *Highlighter) Language() string {
	if h == nil || h.lexer == nil {
		return ""
	}
	return h.lexer.Config().Name
}

// Spans returns the colored spans of text in ascending order. The result of
// the last call is reused while the text is unchanged.
func (h *Highlighter) Spans(text string) []Span {
	if h == nil || h.lexer == nil {
		return nil
	}
	if h.valid && h.text == text {
		return h.spans
	}

	h.text = text
	h.valid = true
	h.spans = make([]Span, 0, len(h.spans))

	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return nil
	}

	offset := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		start := offset
		offset += len(tok.Value)
		if start >= len(text) {
			break
		}
		color, ok := colorFor(tok.Type)
		if !ok {
			continue
		}
		r := buffer.NewRange(start, offset).Clamp(len(text))
		h.spans = append(h.spans, Span{Range: r, Color: color})
	}
	return h.spans
}

func colorFor(t chroma.TokenType) (style.Color, bool) {
	switch {
	case t.InCategory(chroma.Comment):
		return style.EditorComment, true
	case t.InCategory(chroma.Keyword):
		return style.EditorKeyword, true
	case t.InSubCategory(chroma.LiteralString):
		return style.EditorString, true
	case t.InSubCategory(chroma.LiteralNumber):
		return style.EditorNumber, true
	default:
		return style.Default, false
	}
}
