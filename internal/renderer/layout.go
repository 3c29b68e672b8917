package renderer

// The content area starts below the header and a spacer row and ends above
// a spacer row and the footer.
const (
	contentTop    = 2
	reservedRows  = 4
	gutterMargin  = 2
	gutterPadding = 2
	minDigits     = 2
)

// Bounds is a screen rectangle.
type Bounds struct {
	X, Y, W, H int
}

// Layout holds the screen geometry of one frame.
type Layout struct {
	Width, Height int

	// Content is the area holding the gutter and the text.
	Content Bounds

	// LineNumberWidth is the right-aligned line number field, including
	// its padding.
	LineNumberWidth int

	// GutterMargin separates line numbers from the text.
	GutterMargin int

	// TextStart is the screen column of the first text column.
	TextStart int

	// TextWidth is the number of text columns.
	TextWidth int
}

// ComputeLayout lays out a width x height screen showing lineCount lines.
func ComputeLayout(width, height, lineCount int) Layout {
	width, height = max(width, 0), max(height, 0)
	numberWidth := max(digitCount(lineCount), minDigits) + gutterPadding
	textStart := numberWidth + gutterMargin
	return Layout{
		Width:           width,
		Height:          height,
		Content:         Bounds{X: 0, Y: contentTop, W: width, H: max(height-reservedRows, 0)},
		LineNumberWidth: numberWidth,
		GutterMargin:    gutterMargin,
		TextStart:       textStart,
		TextWidth:       max(width-textStart, 0),
	}
}

// ViewSize returns the viewport size matching the text area.
func (l Layout) ViewSize() (width, height int) {
	return l.TextWidth, l.Content.H
}

// FooterRow returns the row of the footer.
func (l Layout) FooterRow() int {
	return l.Height - 1
}

func digitCount(n int) int {
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}
