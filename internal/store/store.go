// Package store provides the byte and JSON access the catalog layer needs,
// backed by a billy.Filesystem so callers can swap the host filesystem for
// an in-memory one.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/ohler55/ojg/oj"
)

// Store reads files and decodes JSON from a filesystem.
type Store struct {
	fs billy.Filesystem
}

// New returns a Store over fsys.
func New(fsys billy.Filesystem) *Store {
	return &Store{fs: fsys}
}

// NewOS returns a Store over the host filesystem. Paths are expected to be
// absolute.
func NewOS() *Store {
	return New(osfs.New("/"))
}

// FS returns the underlying filesystem.
func (s *Store) FS() billy.Filesystem { return s.fs }

// ReadFile returns the full contents of path.
func (s *Store) ReadFile(path string) ([]byte, error) {
	return util.ReadFile(s.fs, path)
}

// ParseJSON decodes data into generic values: map[string]any for objects,
// []any for arrays, and scalars otherwise.
func (s *Store) ParseJSON(data []byte) (any, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return v, nil
}

// WriteFile writes data to path, creating parent directories as needed.
func (s *Store) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := util.WriteFile(s.fs, path, data, os.FileMode(0o644)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
