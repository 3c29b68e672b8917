package backend

import (
	"errors"
	"fmt"
	"io"

	"github.com/dshills/quill/internal/input/key"
)

// Terminal size discovery: move the cursor as far as the terminal allows,
// then ask where it ended up.
const (
	cursorToCorner = "\x1b[999;999H"
	reportCursor   = "\x1b[6n"

	// maxReportDigits bounds each coordinate of a cursor report.
	maxReportDigits = 6
)

// ErrMalformedReport is returned when the terminal's cursor position report
// does not have the form ESC [ rows ; cols R.
var ErrMalformedReport = errors.New("malformed cursor position report")

// ReportError describes a malformed cursor position report.
type ReportError struct {
	Got    []byte // Bytes read before the report was rejected
	Reason string
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	return fmt.Sprintf("%s: %s (read %q)", ErrMalformedReport, e.Reason, e.Got)
}

// Unwrap returns ErrMalformedReport.
func (e *ReportError) Unwrap() error {
	return ErrMalformedReport
}

// QuerySize determines the terminal size by moving the cursor to the far
// corner and requesting a cursor position report, which is read from src.
//
// The 1-based report is converted to 0-based coordinates, so a report of
// ESC[24;80R yields width 79 and height 23.
func QuerySize(w io.Writer, src key.ByteSource) (width, height int, err error) {
	if _, err := io.WriteString(w, cursorToCorner+reportCursor); err != nil {
		return 0, 0, fmt.Errorf("request cursor position: %w", err)
	}
	rows, cols, err := ParseCursorReport(src)
	if err != nil {
		return 0, 0, err
	}
	return cols - 1, rows - 1, nil
}

// ParseCursorReport reads ESC [ rows ; cols R from src and returns the
// 1-based row and column.
func ParseCursorReport(src key.ByteSource) (row, col int, err error) {
	p := reportParser{src: src}
	if err := p.expect(key.ByteEscape); err != nil {
		return 0, 0, err
	}
	if err := p.expect('['); err != nil {
		return 0, 0, err
	}
	if row, err = p.number(';'); err != nil {
		return 0, 0, err
	}
	if col, err = p.number('R'); err != nil {
		return 0, 0, err
	}
	if row < 1 || col < 1 {
		return 0, 0, &ReportError{Got: p.read, Reason: "coordinates are 1-based"}
	}
	return row, col, nil
}

type reportParser struct {
	src  key.ByteSource
	read []byte
}

func (p *reportParser) next() (byte, error) {
	b, err := p.src.NextByte()
	if err != nil {
		return 0, fmt.Errorf("read cursor position report: %w", err)
	}
	p.read = append(p.read, b)
	return b, nil
}

func (p *reportParser) expect(want byte) error {
	b, err := p.next()
	if err != nil {
		return err
	}
	if b != want {
		return &ReportError{Got: p.read, Reason: fmt.Sprintf("expected %q", want)}
	}
	return nil
}

func (p *reportParser) number(terminator byte) (int, error) {
	n, digits := 0, 0
	for {
		b, err := p.next()
		if err != nil {
			return 0, err
		}
		switch {
		case b == terminator && digits > 0:
			return n, nil
		case b >= '0' && b <= '9' && digits < maxReportDigits:
			n = n*10 + int(b-'0')
			digits++
		default:
			return 0, &ReportError{Got: p.read, Reason: fmt.Sprintf("expected digits terminated by %q", terminator)}
		}
	}
}
