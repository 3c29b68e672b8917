package tty

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/quill/internal/input"
	"github.com/dshills/quill/internal/input/key"
)

// fakeTty serves queued chunks, one per Read. With block set, Read waits on
// it once the chunks run out.
type fakeTty struct {
	chunks  [][]byte
	block   chan struct{}
	out     bytes.Buffer
	resize  func()
	size    tcell.WindowSize
	stopped bool
	drained bool
	closed  bool
	sizeErr error
}

func (f *fakeTty) Start() error { return nil }
func (f *fakeTty) Stop() error  { f.stopped = true; return nil }
func (f *fakeTty) Drain() error { f.drained = true; return nil }

func (f *fakeTty) NotifyResize(cb func()) { f.resize = cb }

func (f *fakeTty) WindowSize() (tcell.WindowSize, error) { return f.size, f.sizeErr }

func (f *fakeTty) Read(p []byte) (int, error) {
	if len(f.chunks) == 0 {
		if f.block != nil {
			<-f.block
		}
		return 0, io.EOF
	}
	n := copy(p, f.chunks[0])
	f.chunks = f.chunks[1:]
	return n, nil
}

func (f *fakeTty) Write(p []byte) (int, error) { return f.out.Write(p) }
func (f *fakeTty) Close() error                { f.closed = true; return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []input.Stroke
	}{
		{"plain", "ab", []input.Stroke{{Bytes: []byte("a")}, {Bytes: []byte("b")}}},
		{"del", "\x7f", []input.Stroke{{Bytes: []byte{8}}}},
		{"lone escape", "\x1b", []input.Stroke{{Bytes: []byte{27}}}},
		{"escape then command", "\x1bs", []input.Stroke{{Bytes: []byte{27}}, {Bytes: []byte("s")}}},
		{"up", "\x1b[A", []input.Stroke{{Bytes: []byte{224, 72}}}},
		{"ss3 down", "\x1bOB", []input.Stroke{{Bytes: []byte{224, 80}}}},
		{"shift right", "\x1b[1;2C", []input.Stroke{{Bytes: []byte{224, 77}, Modifiers: key.ModShift}}},
		{"ctrl left", "\x1b[1;5D", []input.Stroke{{Bytes: []byte{224, 115}, Modifiers: key.ModCtrl}}},
		{"ctrl shift right", "\x1b[1;6C", []input.Stroke{{Bytes: []byte{224, 116}, Modifiers: key.ModCtrl | key.ModShift}}},
		{"ctrl up", "\x1b[1;5A", []input.Stroke{{Bytes: []byte{224, 72}, Modifiers: key.ModCtrl}}},
		{"delete", "\x1b[3~", []input.Stroke{{Bytes: []byte{224, 83}}}},
		{"cursor report", "\x1b[24;80R", []input.Stroke{{Bytes: []byte("\x1b[24;80R")}}},
		{"unterminated", "\x1b[2", []input.Stroke{{Bytes: []byte{27}}, {Bytes: []byte("[")}, {Bytes: []byte("2")}}},
		{"home", "\x1b[H", []input.Stroke{{Bytes: []byte{224, codeHome}}}},
		{"ss3 end", "\x1bOF", []input.Stroke{{Bytes: []byte{224, codeEnd}}}},
		{"vt home", "\x1b[1~", []input.Stroke{{Bytes: []byte{224, codeHome}}}},
		{"vt end", "\x1b[4~", []input.Stroke{{Bytes: []byte{224, codeEnd}}}},
		{"page up", "\x1b[5~", []input.Stroke{{Bytes: []byte{224, codePageUp}}}},
		{"ctrl page down", "\x1b[6;5~", []input.Stroke{{Bytes: []byte{224, codePageDown}, Modifiers: key.ModCtrl}}},
		{"insert", "\x1b[2~", []input.Stroke{{Bytes: []byte{224, codeInsert}}}},
		{"f1", "\x1bOP", []input.Stroke{{Bytes: []byte{224, codeUnmapped}}}},
		{"f5", "\x1b[15~", []input.Stroke{{Bytes: []byte{224, codeUnmapped}}}},
		{"bracketed paste start", "\x1b[200~x", []input.Stroke{{Bytes: []byte{224, codeUnmapped}}, {Bytes: []byte("x")}}},
		{"private mode reply", "\x1b[?1;2c", []input.Stroke{{Bytes: []byte{224, codeUnmapped}}}},
		{"intermediate byte", "\x1b[ q", []input.Stroke{{Bytes: []byte{224, codeUnmapped}}}},
		{"bare R is not a report", "\x1b[R", []input.Stroke{{Bytes: []byte{224, codeUnmapped}}}},
		{"invalid final byte", "\x1b[1\x01", []input.Stroke{{Bytes: []byte{27}}, {Bytes: []byte("[")}, {Bytes: []byte("1")}, {Bytes: []byte{1}}}},
		{"mixed", "x\x1b[Dy", []input.Stroke{{Bytes: []byte("x")}, {Bytes: []byte{224, 75}}, {Bytes: []byte("y")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate([]byte(tt.in)))
		})
	}
}

func TestTranslatePartialKeepsTail(t *testing.T) {
	tests := []struct {
		in   string
		rest string
	}{
		{"a\x1b", "\x1b"},
		{"a\x1b[", "\x1b["},
		{"a\x1b[1;", "\x1b[1;"},
		{"a\x1bO", "\x1bO"},
		{"a\x1b[A", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			strokes, rest := translatePartial([]byte(tt.in))
			assert.Equal(t, []byte("a"), strokes[0].Bytes)
			assert.Equal(t, tt.rest, string(rest))
		})
	}
}

// Keys without an editor action must decode to KeyUnknown so no handler
// treats the sequence tail as typed text.
func TestUnmappedKeysDecodeUnknown(t *testing.T) {
	for _, seq := range []string{"\x1b[H", "\x1b[F", "\x1b[5~", "\x1bOP", "\x1b[200~", "\x1b[15;2~"} {
		t.Run(seq, func(t *testing.T) {
			f := &fakeTty{chunks: [][]byte{[]byte(seq)}}
			d := key.NewDecoder(New(f, discardLogger()))

			ev, err := d.Next()
			require.NoError(t, err)
			assert.Equal(t, key.KeyUnknown, ev.Key)

			_, err = d.Next()
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestSplitSequenceIsReassembled(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   []byte
	}{
		{"escape then rest", []string{"\x1b", "[A"}, []byte{224, 72}},
		{"csi then final", []string{"\x1b[", "B"}, []byte{224, 80}},
		{"modifier split", []string{"x\x1b[1;", "5D"}, []byte{'x', 224, 115}},
		{"three reads", []string{"\x1b", "[3", "~"}, []byte{224, 83}},
		{"report split", []string{"\x1b[24", ";80R"}, []byte("\x1b[24;80R")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeTty{}
			for _, c := range tt.chunks {
				f.chunks = append(f.chunks, []byte(c))
			}
			src := New(f, discardLogger())
			src.escTimeout = time.Minute

			var got []byte
			for {
				b, err := src.NextByte()
				if err != nil {
					require.ErrorIs(t, err, io.EOF)
					break
				}
				got = append(got, b)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoneEscapeFlushedAfterTimeout(t *testing.T) {
	f := &fakeTty{chunks: [][]byte{[]byte("\x1b")}, block: make(chan struct{})}
	defer close(f.block)
	tt := New(f, discardLogger())
	tt.escTimeout = 5 * time.Millisecond

	b, err := tt.NextByte()
	require.NoError(t, err)
	assert.Equal(t, byte(27), b)
}

func TestUnfinishedSequenceFlushedAtEOF(t *testing.T) {
	f := &fakeTty{chunks: [][]byte{[]byte("\x1b[")}}
	tt := New(f, discardLogger())
	tt.escTimeout = time.Minute

	var got []byte
	for {
		b, err := tt.NextByte()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		got = append(got, b)
	}
	assert.Equal(t, []byte{27, '['}, got)
}

func TestCloseUnblocksNextByte(t *testing.T) {
	f := &fakeTty{block: make(chan struct{})}
	defer close(f.block)
	tt := New(f, discardLogger())

	errc := make(chan error, 1)
	go func() {
		_, err := tt.NextByte()
		errc <- err
	}()
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, tt.Close())

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("NextByte still blocked after Close")
	}
}

func TestDecodeModifier(t *testing.T) {
	assert.Equal(t, key.ModNone, decodeModifier(""))
	assert.Equal(t, key.ModNone, decodeModifier("1"))
	assert.Equal(t, key.ModShift, decodeModifier("2"))
	assert.Equal(t, key.ModAlt, decodeModifier("3"))
	assert.Equal(t, key.ModCtrl, decodeModifier("5"))
	assert.Equal(t, key.ModCtrl|key.ModAlt|key.ModShift, decodeModifier("8"))
	assert.Equal(t, key.ModNone, decodeModifier("x"))
	assert.Equal(t, key.ModNone, decodeModifier("99999"))
}

func TestNextByteLatchesModifiers(t *testing.T) {
	f := &fakeTty{chunks: [][]byte{[]byte("\x1b[1;2Ca"), []byte("\x7f")}}
	tt := New(f, discardLogger())

	var got []byte
	var shifted []bool
	for {
		b, err := tt.NextByte()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		got = append(got, b)
		shifted = append(shifted, tt.IsModifierPressed(key.ModShift))
	}

	assert.Equal(t, []byte{224, 77, 'a', 8}, got)
	assert.Equal(t, []bool{true, true, false, false}, shifted)
}

func TestDecoderOverTTY(t *testing.T) {
	f := &fakeTty{chunks: [][]byte{[]byte("\x1b[1;5Dq")}}
	d := key.NewDecoder(New(f, discardLogger()))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, key.KeyLeft, ev.Key)
	assert.Equal(t, " 224 115", d.Trace())

	ev, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, key.NewCharEvent('q'), ev)
}

func TestResizeFlag(t *testing.T) {
	f := &fakeTty{size: tcell.WindowSize{Width: 80, Height: 24}}
	tt := New(f, discardLogger())

	assert.False(t, tt.Resized())
	f.resize()
	assert.True(t, tt.Resized())
	assert.False(t, tt.Resized())

	w, h, err := tt.WindowSize()
	require.NoError(t, err)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	f.sizeErr = errors.New("no tty")
	_, _, err = tt.WindowSize()
	assert.Error(t, err)
}

func TestWriteAndClose(t *testing.T) {
	f := &fakeTty{chunks: [][]byte{[]byte("a")}}
	tt := New(f, discardLogger())

	_, err := tt.Write([]byte("frame"))
	require.NoError(t, err)
	assert.Equal(t, "frame", f.out.String())

	require.NoError(t, tt.Close())
	assert.True(t, f.drained)
	assert.True(t, f.stopped)
	assert.True(t, f.closed)
	require.NoError(t, tt.Close())

	_, err = tt.NextByte()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCopyToClipboardLogsFailure(t *testing.T) {
	var logs bytes.Buffer
	tt := New(&fakeTty{}, slog.New(slog.NewTextHandler(&logs, nil)))

	var copied string
	tt.copyText = func(s string) error { copied = s; return nil }
	tt.CopyToClipboard("hello")
	assert.Equal(t, "hello", copied)
	assert.Empty(t, logs.String())

	tt.copyText = func(string) error { return errors.New("no clipboard") }
	tt.CopyToClipboard("hello")
	assert.Contains(t, logs.String(), "clipboard copy failed")
}
