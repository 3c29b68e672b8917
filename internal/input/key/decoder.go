package key

import (
	"strconv"
	"strings"
)

// ByteSource supplies raw input bytes. NextByte blocks until a byte is
// available.
type ByteSource interface {
	NextByte() (byte, error)
}

// Decoder converts a byte stream into Events.
//
// Each call to Next records the bytes it consumed; Trace returns them until
// the following call replaces them.
type Decoder struct {
	src   ByteSource
	trace []byte
}

// NewDecoder creates a decoder reading from src.
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src, trace: make([]byte, 0, 2)}
}

// Next reads and decodes the next event. It returns an error only when the
// underlying source fails; the trace then holds whatever was read.
func (d *Decoder) Next() (Event, error) {
	d.trace = d.trace[:0]

	b, err := d.read()
	if err != nil {
		return Event{}, err
	}

	switch b {
	case ByteSelectAll:
		return NewSpecialEvent(KeySelectAll), nil
	case ByteExit:
		return NewSpecialEvent(KeyExit), nil
	case ByteBackspace:
		return NewSpecialEvent(KeyBackspace), nil
	case ByteReturn:
		return NewCharEvent('\n'), nil
	case ByteCancel:
		return NewSpecialEvent(KeyCancel), nil
	case ByteEscape:
		return NewSpecialEvent(KeyEscape), nil
	case BytePrefix:
		code, err := d.read()
		if err != nil {
			return Event{}, err
		}
		return NewSpecialEvent(decodeSpecial(code)), nil
	default:
		return NewCharEvent(b), nil
	}
}

// Trace returns the raw bytes consumed by the last call to Next, formatted
// as space-prefixed decimals, e.g. " 224 72".
func (d *Decoder) Trace() string {
	var sb strings.Builder
	for _, b := range d.trace {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(int(b)))
	}
	return sb.String()
}

func (d *Decoder) read() (byte, error) {
	b, err := d.src.NextByte()
	if err != nil {
		return 0, err
	}
	d.trace = append(d.trace, b)
	return b, nil
}

func decodeSpecial(code byte) Key {
	switch code {
	case ByteUp:
		return KeyUp
	case ByteDown:
		return KeyDown
	case ByteLeft, ByteCtrlLeft:
		return KeyLeft
	case ByteRight, ByteCtrlRight:
		return KeyRight
	case ByteDeleteCode:
		return KeyDelete
	default:
		return KeyUnknown
	}
}
