// Package renderer draws the editor onto a Canvas.
//
// A frame is laid out as:
//
//	row 0          header: file name, mode badge, help or exit prompt
//	rows 2..h-3    content: line-number gutter and text
//	row h-1        footer: cursor position or status, input trace
//
// Text is colored in layers: the content color, then syntax highlighting,
// then the selection. Drawing goes through the Canvas interface, which
// backend.Terminal implements; nothing is sent to the terminal until the
// caller flushes it.
//
// Usage:
//
//	term := backend.NewTerminal(os.Stdout, style.DefaultTheme())
//	r := renderer.New("demo.lua", highlight.New("", "demo.lua"))
//	r.Draw(term, state, decoder.Trace())
//	term.Flush()
package renderer
