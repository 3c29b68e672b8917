package renderer

import (
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/renderer/style"
)

// Run is a colored range of text.
type Run struct {
	Range buffer.Range
	Color style.Color
}

// Runs is a sequence of adjacent runs covering a range of text.
type Runs []Run

// NewRuns creates a single run covering r.
func NewRuns(r buffer.Range, base style.Color) Runs {
	if r.IsEmpty() {
		return nil
	}
	return Runs{{Range: r, Color: base}}
}

// Highlight recolors the part of the runs covered by r, splitting runs at
// its boundaries. Later highlights take precedence over earlier ones.
func (rs Runs) Highlight(r buffer.Range, color style.Color) Runs {
	if r.IsEmpty() {
		return rs
	}
	out := make(Runs, 0, len(rs)+2)
	for _, run := range rs {
		a := run.Range
		if a.Start >= r.End || a.End <= r.Start {
			out = append(out, run)
			continue
		}
		before := buffer.NewRange(a.Start, max(r.Start, a.Start))
		within := buffer.NewRange(before.End, min(r.End, a.End))
		after := buffer.NewRange(within.End, a.End)
		if !before.IsEmpty() {
			out = append(out, Run{Range: before, Color: run.Color})
		}
		if !within.IsEmpty() {
			out = append(out, Run{Range: within, Color: color})
		}
		if !after.IsEmpty() {
			out = append(out, Run{Range: after, Color: run.Color})
		}
	}
	return out
}
