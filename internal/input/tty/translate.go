package tty

import (
	"github.com/dshills/quill/internal/input"
	"github.com/dshills/quill/internal/input/key"
)

const (
	byteDEL = 127
	csi     = '['
	ss3     = 'O'
)

// Codes for keys the editor has no action for. The decoder maps them to
// KeyUnknown; they are distinct so the debug trace shows which key it was.
const (
	codeUnmapped byte = 0
	codeHome     byte = 71
	codePageUp   byte = 73
	codeEnd      byte = 79
	codePageDown byte = 81
	codeInsert   byte = 82
)

// Translate splits a chunk read from a terminal into strokes, normalizing
// terminal escape sequences to the editor's byte protocol.
//
// Arrow sequences (CSI or SS3, with an optional "1;m" modifier parameter)
// become a two-byte 224-prefixed pair carrying the decoded modifiers; CSI
// "3~" becomes the delete pair. Other navigation and function keys become
// 224-prefixed codes the decoder does not assign. A cursor position report
// passes through unchanged. DEL becomes backspace. An ESC not starting a
// complete sequence is delivered alone.
func Translate(chunk []byte) []input.Stroke {
	strokes, rest := translatePartial(chunk)
	return append(strokes, flushPartial(rest)...)
}

// translatePartial is Translate for a chunk that may end in the middle of
// an escape sequence. The unfinished tail is returned untranslated so it can
// be completed by the next chunk.
func translatePartial(chunk []byte) (strokes []input.Stroke, rest []byte) {
	for i := 0; i < len(chunk); {
		b := chunk[i]
		switch {
		case b == key.ByteEscape:
			stroke, n := translateEscape(chunk[i:])
			if n == 0 {
				return strokes, chunk[i:]
			}
			strokes = append(strokes, stroke)
			i += n
		case b == byteDEL:
			strokes = append(strokes, input.Stroke{Bytes: []byte{key.ByteBackspace}})
			i++
		default:
			strokes = append(strokes, input.Stroke{Bytes: []byte{b}})
			i++
		}
	}
	return strokes, nil
}

// flushPartial gives up on an unfinished sequence: the ESC is delivered
// alone and the bytes after it as ordinary input.
func flushPartial(rest []byte) []input.Stroke {
	if len(rest) == 0 {
		return nil
	}
	strokes := []input.Stroke{{Bytes: []byte{key.ByteEscape}}}
	tail, _ := translatePartial(rest[1:])
	return append(strokes, tail...)
}

// translateEscape translates the sequence at the start of seq, which begins
// with ESC, and returns the stroke and the number of bytes consumed. It
// returns 0 when seq ends before the sequence is complete.
func translateEscape(seq []byte) (input.Stroke, int) {
	lone := input.Stroke{Bytes: []byte{key.ByteEscape}}
	if len(seq) < 2 {
		return lone, 0
	}
	if seq[1] != csi && seq[1] != ss3 {
		return lone, 1
	}

	// ECMA-48: parameter bytes 0x30..0x3f, intermediate bytes 0x20..0x2f,
	// then a final byte 0x40..0x7e.
	end := 2
	for end < len(seq) && seq[end] >= 0x30 && seq[end] <= 0x3f {
		end++
	}
	paramEnd := end
	for end < len(seq) && seq[end] >= 0x20 && seq[end] <= 0x2f {
		end++
	}
	if end >= len(seq) {
		return lone, 0
	}
	if seq[end] < 0x40 || seq[end] > 0x7e {
		return lone, 1
	}
	params := seq[2:paramEnd]
	final := seq[end]
	n := end + 1

	if seq[1] == csi && final == 'R' && hasSeparator(params) {
		raw := make([]byte, n)
		copy(raw, seq[:n])
		return input.Stroke{Bytes: raw}, n
	}

	code, mods := specialCode(seq[1], params, final, paramEnd != end)
	return input.Stroke{
		Bytes:     []byte{key.BytePrefix, code},
		Modifiers: mods,
	}, n
}

// specialCode maps a complete sequence to a 224-prefixed code and the
// modifiers it reports.
func specialCode(intro byte, params []byte, final byte, hasIntermediate bool) (byte, key.Modifier) {
	// Private parameters (a leading '<' through '?') carry no key.
	if hasIntermediate || (len(params) > 0 && params[0] >= '<') {
		return codeUnmapped, key.ModNone
	}
	num, modParam := splitParams(params)
	mods := decodeModifier(modParam)

	if a, ok := arrowCode(final); ok {
		return a.withCtrl(mods), mods
	}
	switch final {
	case 'H':
		return codeHome, mods
	case 'F':
		return codeEnd, mods
	}
	if intro == csi && final == '~' {
		switch num {
		case "1", "7":
			return codeHome, mods
		case "2":
			return codeInsert, mods
		case "3":
			return key.ByteDeleteCode, mods
		case "4", "8":
			return codeEnd, mods
		case "5":
			return codePageUp, mods
		case "6":
			return codePageDown, mods
		}
	}
	return codeUnmapped, mods
}

func hasSeparator(params []byte) bool {
	for _, b := range params {
		if b == ';' {
			return true
		}
	}
	return false
}

type arrow byte

// withCtrl returns the word-jump code for horizontal arrows with Ctrl held.
func (a arrow) withCtrl(mods key.Modifier) byte {
	if !mods.Has(key.ModCtrl) {
		return byte(a)
	}
	switch byte(a) {
	case key.ByteLeft:
		return key.ByteCtrlLeft
	case key.ByteRight:
		return key.ByteCtrlRight
	}
	return byte(a)
}

func arrowCode(final byte) (arrow, bool) {
	switch final {
	case 'A':
		return arrow(key.ByteUp), true
	case 'B':
		return arrow(key.ByteDown), true
	case 'C':
		return arrow(key.ByteRight), true
	case 'D':
		return arrow(key.ByteLeft), true
	}
	return 0, false
}

func splitParams(params []byte) (first, second string) {
	for i, b := range params {
		if b == ';' {
			return string(params[:i]), string(params[i+1:])
		}
	}
	return string(params), ""
}

// decodeModifier decodes an xterm modifier parameter: the value minus one
// is a bitmask of shift (1), alt (2) and ctrl (4).
func decodeModifier(param string) key.Modifier {
	v := 0
	for i := 0; i < len(param); i++ {
		if !isDigit(param[i]) {
			return key.ModNone
		}
		v = v*10 + int(param[i]-'0')
		if v > 255 {
			return key.ModNone
		}
	}
	if v < 2 {
		return key.ModNone
	}
	bits := v - 1
	mods := key.ModNone
	if bits&1 != 0 {
		mods = mods.With(key.ModShift)
	}
	if bits&2 != 0 {
		mods = mods.With(key.ModAlt)
	}
	if bits&4 != 0 {
		mods = mods.With(key.ModCtrl)
	}
	return mods
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
