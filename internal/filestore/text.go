package filestore

import "bytes"

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// binarySample is how much of a file is inspected by isBinary.
const binarySample = 8192

// isBinary reports whether content looks like binary data: it contains a
// NUL byte, or more than a tenth of its bytes are control characters other
// than tab, newline and carriage return.
func isBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	sample := content[:min(len(content), binarySample)]
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}
	nonText := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			nonText++
		}
	}
	return nonText*10 > len(sample)
}

// format records how a file was encoded on disk so that a save writes it
// back the same way.
type format struct {
	bom  bool
	crlf bool
}

// decode strips a UTF-8 BOM and converts CRLF line endings to LF. A file
// is treated as CRLF when every newline in it is preceded by a carriage
// return.
func decode(content []byte) (string, format) {
	var f format
	if bytes.HasPrefix(content, bomUTF8) {
		f.bom = true
		content = content[len(bomUTF8):]
	}
	lf := bytes.Count(content, []byte{'\n'})
	if lf > 0 && bytes.Count(content, []byte("\r\n")) == lf {
		f.crlf = true
		content = bytes.ReplaceAll(content, []byte("\r\n"), []byte{'\n'})
	}
	return string(content), f
}

// encode reverses decode.
func encode(text string, f format) []byte {
	content := []byte(text)
	if f.crlf {
		content = bytes.ReplaceAll(content, []byte{'\n'}, []byte("\r\n"))
	}
	if f.bom {
		content = append(append([]byte(nil), bomUTF8...), content...)
	}
	return content
}
