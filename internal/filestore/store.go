// Package filestore persists the edited text to a single file.
//
// The store keeps the on-disk format of the file it loaded: a UTF-8 byte
// order mark and CRLF line endings are removed on load and restored on
// save, so the editor only ever sees '\n'.
package filestore

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// DefaultMaxFileSize is the largest file Load accepts.
const DefaultMaxFileSize int64 = 10 << 20

// Store loads and saves one file on an afero filesystem.
type Store struct {
	fs          afero.Fs
	path        string
	maxFileSize int64

	mu     sync.Mutex
	format format
}

// Option configures a Store.
type Option func(*Store)

// WithMaxFileSize sets the largest file Load accepts. Zero or less disables
// the limit.
func WithMaxFileSize(size int64) Option {
	return func(s *Store) {
		s.maxFileSize = size
	}
}

// New creates a store for path on fsys.
func New(fsys afero.Fs, path string, opts ...Option) *Store {
	s := &Store{
		fs:          fsys,
		path:        filepath.Clean(path),
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the file. A missing file returns an error matching
// ErrNotFound and nothing is created.
func (s *Store) Load() (string, error) {
	info, err := s.fs.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &IOError{Op: "load", Path: s.path, Err: ErrNotFound}
		}
		return "", &IOError{Op: "load", Path: s.path, Err: err}
	}
	if info.IsDir() {
		return "", &IOError{Op: "load", Path: s.path, Err: ErrIsDirectory}
	}
	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return "", &IOError{Op: "load", Path: s.path, Err: ErrFileTooLarge}
	}

	content, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return "", &IOError{Op: "load", Path: s.path, Err: err}
	}
	if isBinary(content) {
		return "", &IOError{Op: "load", Path: s.path, Err: ErrBinaryFile}
	}

	text, f := decode(content)

	s.mu.Lock()
	s.format = f
	s.mu.Unlock()
	return text, nil
}

// Save writes text to the file, creating it and its directory if needed
// and truncating any previous content.
func (s *Store) Save(text string) error {
	s.mu.Lock()
	f := s.format
	s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return &IOError{Op: "save", Path: s.path, Err: err}
		}
	}
	if err := afero.WriteFile(s.fs, s.path, encode(text, f), 0o644); err != nil {
		return &IOError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}
