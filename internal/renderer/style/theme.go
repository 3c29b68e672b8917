package style

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ResetSequence resets all terminal attributes.
const ResetSequence = "\x1b[0m"

// ErrUnknownColor is returned when a theme override names no known color.
var ErrUnknownColor = errors.New("unknown color")

// Pair is the foreground and background of a color role.
type Pair struct {
	FG colorful.Color
	BG colorful.Color
}

// Theme maps colors to truecolor escape sequences.
type Theme struct {
	pairs [colorCount]Pair
	seqs  [colorCount]string
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

var (
	pureBlack  = rgb(0, 0, 0)
	pureWhite  = rgb(255, 255, 255)
	gray0      = rgb(25, 25, 25)
	gray3      = rgb(55, 55, 55)
	gray4      = rgb(130, 130, 130)
	gray5      = rgb(180, 180, 180)
	white      = rgb(220, 220, 220)
	purple     = rgb(127, 32, 176)
	blue       = rgb(0, 90, 223)
	green      = rgb(13, 188, 121)
	red        = rgb(205, 49, 49)
	orange     = rgb(206, 145, 120)
	lightGreen = rgb(181, 206, 168)
	darkCyan   = rgb(75, 95, 90)
	darkYellow = rgb(55, 55, 45)
	darkBlue   = rgb(35, 40, 55)
	keyword    = rgb(86, 156, 214)
	comment    = rgb(106, 153, 85)
)

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	t := &Theme{}
	defaults := map[Color]Pair{
		Default:                  {pureWhite, pureBlack},
		Reset:                    {white, gray0},
		ClearColor:               {white, gray0},
		ExitMessage:              {green, gray0},
		Header:                   {gray4, gray0},
		HeaderFilename:           {white, purple},
		HeaderModeCmd:            {white, green},
		HeaderModeEdit:           {white, blue},
		HeaderHelp:               {gray4, gray0},
		HeaderHelpBinding:        {blue, gray0},
		ExitRequest:              {gray4, gray0},
		ExitRequestBinding:       {red, gray0},
		EditorContent:            {gray5, gray0},
		EditorGutter:             {gray3, gray0},
		EditorGutterCursor:       {darkCyan, gray0},
		EditorDetail:             {darkYellow, gray0},
		EditorSelection:          {white, darkBlue},
		EditorKeyword:            {keyword, gray0},
		EditorString:             {orange, gray0},
		EditorNumber:             {lightGreen, gray0},
		EditorComment:            {comment, gray0},
		Footer:                   {white, gray0},
		FooterStatusInfo:         {white, blue},
		FooterStatusError:        {white, red},
		FooterStatusInfoContent:  {gray4, gray0},
		FooterStatusErrorContent: {red, gray0},
	}
	for c, p := range defaults {
		t.Set(c, p)
	}
	return t
}

// Set replaces the pair of a color.
func (t *Theme) Set(c Color, p Pair) {
	if c >= colorCount {
		return
	}
	t.pairs[c] = p
	t.seqs[c] = sequence(c, p)
}

// Pair returns the pair of a color.
func (t *Theme) Pair(c Color) Pair {
	if c >= colorCount {
		return t.pairs[Default]
	}
	return t.pairs[c]
}

// Override sets a color from hex strings such as "#1e1e1e". An empty string
// keeps the current value of that side.
func (t *Theme) Override(name, fg, bg string) error {
	c, ok := ParseColor(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	p := t.Pair(c)
	if fg != "" {
		col, err := colorful.Hex(fg)
		if err != nil {
			return fmt.Errorf("color %s: foreground %q: %w", name, fg, err)
		}
		p.FG = col
	}
	if bg != "" {
		col, err := colorful.Hex(bg)
		if err != nil {
			return fmt.Errorf("color %s: background %q: %w", name, bg, err)
		}
		p.BG = col
	}
	t.Set(c, p)
	return nil
}

// Sequence returns the escape sequence that selects a color.
func (t *Theme) Sequence(c Color) string {
	if c >= colorCount {
		return ResetSequence
	}
	return t.seqs[c]
}

func sequence(c Color, p Pair) string {
	if c.IsReset() {
		return ResetSequence
	}
	fr, fg, fb := p.FG.RGB255()
	br, bg, bb := p.BG.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%d;48;2;%d;%d;%dm", fr, fg, fb, br, bg, bb)
}
