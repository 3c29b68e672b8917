package app

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationError(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"op only", NewOperationError("draw", "", nil), "draw"},
		{"with target", NewOperationError("save", "demo.lua", io.ErrShortWrite), "save demo.lua: short write"},
		{"wrapped input error", NewOperationError("read input", "", io.EOF), "read input: EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestOperationErrorIs(t *testing.T) {
	err := NewOperationError("save", "demo.lua", io.ErrShortWrite)

	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.ErrorIs(t, err, err)
	assert.NotErrorIs(t, err, NewOperationError("save", "demo.lua", io.ErrShortWrite))
	assert.NotErrorIs(t, err, io.EOF)

	var nilErr *OperationError
	assert.Empty(t, nilErr.Error())
	assert.NoError(t, nilErr.Unwrap())
}

func TestInitError(t *testing.T) {
	cause := errors.New("bad color")
	err := &InitError{Component: "theme", Err: cause}

	assert.Equal(t, "init theme: bad color", err.Error())
	assert.ErrorIs(t, err, ErrInitialization)
	assert.ErrorIs(t, err, cause)
}
