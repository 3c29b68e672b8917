package input

import (
	"io"
	"sync"

	"github.com/dshills/quill/internal/input/key"
)

// Stroke is one scripted input step: the bytes of a key and the modifiers
// held while it is delivered.
type Stroke struct {
	Bytes     []byte
	Modifiers key.Modifier
}

// ScriptSource replays scripted strokes. Once the script is exhausted
// NextByte returns io.EOF. Copied text is recorded.
type ScriptSource struct {
	mu      sync.Mutex
	strokes []Stroke
	pending []byte
	mods    key.Modifier
	copied  []string
}

// NewScriptSource creates a source replaying strokes in order.
func NewScriptSource(strokes ...Stroke) *ScriptSource {
	return &ScriptSource{strokes: strokes}
}

// NewByteScript creates a source replaying raw bytes with no modifiers held.
func NewByteScript(data ...byte) *ScriptSource {
	return NewScriptSource(Stroke{Bytes: data})
}

// Push appends strokes to the end of the script.
func (s *ScriptSource) Push(strokes ...Stroke) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strokes = append(s.strokes, strokes...)
}

// NextByte returns the next scripted byte.
func (s *ScriptSource) NextByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.pending) == 0 {
		if len(s.strokes) == 0 {
			return 0, io.EOF
		}
		s.pending = s.strokes[0].Bytes
		s.mods = s.strokes[0].Modifiers
		s.strokes = s.strokes[1:]
	}
	b := s.pending[0]
	s.pending = s.pending[1:]
	return b, nil
}

// IsModifierPressed reports the modifiers of the stroke being delivered.
func (s *ScriptSource) IsModifierPressed(mod key.Modifier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mods.Has(mod)
}

// CopyToClipboard records text.
func (s *ScriptSource) CopyToClipboard(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.copied = append(s.copied, text)
}

// Copied returns everything copied so far, oldest first.
func (s *ScriptSource) Copied() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.copied...)
}
