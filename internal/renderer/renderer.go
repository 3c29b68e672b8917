package renderer

import (
	"fmt"
	"slices"
	"sort"

	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/renderer/highlight"
	"github.com/dshills/quill/internal/renderer/style"
)

// Canvas is the drawing surface. Write draws at the canvas cursor and
// advances it; DrawRect fills with blanks.
type Canvas interface {
	Size() (width, height int)
	SetCursor(x, y int)
	Write(color style.Color, text string) int
	DrawRect(color style.Color, x, y, w, h int)
}

// TransientName is shown instead of the file name for transient buffers.
const TransientName = "(transient)"

// Renderer draws editor frames.
type Renderer struct {
	fileName    string
	highlighter *highlight.Highlighter
}

// New creates a renderer. fileName is shown in the header; h may be nil to
// disable syntax highlighting.
func New(fileName string, h *highlight.Highlighter) *Renderer {
	return &Renderer{fileName: fileName, highlighter: h}
}

// Layout computes the frame geometry for the canvas and state.
func (r *Renderer) Layout(c Canvas, st *editor.State) Layout {
	w, h := c.Size()
	return ComputeLayout(w, h, st.Buffer().LineCount())
}

// Draw draws a complete frame. trace is the raw input of the last key and
// is shown in the footer.
func (r *Renderer) Draw(c Canvas, st *editor.State, trace string) {
	l := r.Layout(c, st)

	c.DrawRect(style.EditorContent, l.Content.X, l.Content.Y, l.Content.W, l.Content.H)
	r.drawHeader(c, st, l)
	r.drawContent(c, st, l)
	r.drawFooter(c, st, l, trace)
	r.drawCursor(c, st, l)
}

func (r *Renderer) drawHeader(c Canvas, st *editor.State, l Layout) {
	c.DrawRect(style.Header, 0, 0, l.Width, 1)
	c.SetCursor(0, 0)

	name := r.fileName
	if st.IsTransient() {
		name = TransientName
	}
	c.Write(style.HeaderFilename, " "+name+" ")

	if st.Mode() == editor.ModeCommand {
		c.Write(style.HeaderModeCmd, " COMMAND MODE ")
	} else {
		c.Write(style.HeaderModeEdit, " EDITING CODE ")
	}

	if st.IsExitPending() {
		c.Write(style.ExitRequest, " Exit requested. Press ")
		c.Write(style.ExitRequestBinding, "Ctrl-C")
		c.Write(style.ExitRequest, " again to confirm.")
		return
	}
	c.Write(style.HeaderHelp, " Use ")
	c.Write(style.HeaderHelpBinding, "[ESC R]")
	c.Write(style.HeaderHelp, " to run the program, and ")
	c.Write(style.HeaderHelpBinding, "[ESC S]")
	c.Write(style.HeaderHelp, " to save it.")
}

func (r *Renderer) drawContent(c Canvas, st *editor.State, l Layout) {
	buf := st.Buffer()
	text := buf.Text()
	lines := slices.Collect(buf.Lines())
	spans := r.highlighter.Spans(text)
	sel, hasSel := st.Selection()
	windowX, windowY := st.View().Window()
	_, cursorY := st.View().Cursor()

	x := l.Content.X + l.TextStart
	for row := 0; row < l.Content.H; row++ {
		lineNo := windowY + row
		y := l.Content.Y + row
		isText := lineNo < len(lines)
		isCursorLine := lineNo == cursorY

		if isText {
			drawGutter(c, l, y, lineNo, isCursorLine)
		}
		c.DrawRect(style.EditorContent, x, y, l.TextWidth, 1)

		if !isText {
			if !isCursorLine {
				c.SetCursor(x, y)
				c.Write(style.EditorDetail, "~")
			}
			continue
		}

		line := lines[lineNo]
		a := min(line.Start+windowX, line.End)
		b := min(a+l.TextWidth, line.End)
		if b <= a {
			continue
		}

		runs := NewRuns(buffer.NewRange(a, b), style.EditorContent)
		for _, sp := range spansBetween(spans, a, b) {
			runs = runs.Highlight(sp.Range, sp.Color)
		}
		if hasSel {
			runs = runs.Highlight(sel, style.EditorSelection)
		}

		c.SetCursor(x, y)
		for _, run := range runs {
			c.Write(run.Color, text[run.Range.Start:run.Range.End])
		}
	}
}

// drawGutter draws the right-aligned 1-based line number for lineNo.
func drawGutter(c Canvas, l Layout, y, lineNo int, isCursorLine bool) {
	color := style.EditorGutter
	if isCursorLine {
		color = style.EditorGutterCursor
	}
	c.SetCursor(l.Content.X, y)
	c.Write(color, fmt.Sprintf("%*d%*s", l.LineNumberWidth, lineNo+1, l.GutterMargin, ""))
}

// spansBetween returns the spans overlapping [a, b). spans must be sorted.
func spansBetween(spans []highlight.Span, a, b int) []highlight.Span {
	i := sort.Search(len(spans), func(i int) bool { return spans[i].Range.End > a })
	j := i
	for j < len(spans) && spans[j].Range.Start < b {
		j++
	}
	return spans[i:j]
}

func (r *Renderer) drawFooter(c Canvas, st *editor.State, l Layout, trace string) {
	row := l.FooterRow()
	c.DrawRect(style.Footer, 0, row, l.Width, 1)
	c.SetCursor(0, row)

	switch s := st.Status().(type) {
	case editor.StatusError:
		c.Write(style.FooterStatusError, " ERROR ")
		c.Write(style.FooterStatusErrorContent, " "+s.Message+" ")
	case editor.StatusInfo:
		c.Write(style.FooterStatusInfo, " INFO ")
		c.Write(style.FooterStatusInfoContent, " "+s.Message+" ")
	default:
		x, y := st.View().Cursor()
		c.Write(style.FooterStatusInfoContent, fmt.Sprintf("%d,%d", x, y))
		if sel, ok := st.Selection(); ok {
			c.Write(style.FooterStatusInfoContent, fmt.Sprintf(" (%d selected)", sel.Len()))
		}
	}

	c.Write(style.FooterStatusInfoContent, "        "+trace)
}

func (r *Renderer) drawCursor(c Canvas, st *editor.State, l Layout) {
	x, y := st.View().ScreenCursor()
	c.SetCursor(l.Content.X+l.TextStart+x, l.Content.Y+y)
}
