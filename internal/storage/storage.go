// Package storage provides file system access to the contacts backing file.
package storage

import (
	"errors"
	"fmt"
	"os"
)

// DefaultFile is the backing file used when none is configured.
const DefaultFile = "contacts.dat"

// ErrMissing indicates the backing file no longer exists.
var ErrMissing = errors.New("backing file not found")

// Gateway reads and writes the whole contents of one backing file.
// The file is opened and closed on every call.
//
// Save overwrites the file in place. There is no atomic rename and no backup
// of the previous contents, so a crash during Save can leave a truncated file.
type Gateway struct {
	path string
}

// Open returns a Gateway for path, creating an empty file if none exists.
func Open(path string) (*Gateway, error) {
	if path == "" {
		return nil, fmt.Errorf("backing file path must not be empty")
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", path)
		}
	case os.IsNotExist(err):
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("failed to close %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("failed to access %s: %w", path, err)
	}

	return &Gateway{path: path}, nil
}

// Path returns the backing file path.
func (g *Gateway) Path() string {
	return g.path
}

// Save replaces the file contents with data.
func (g *Gateway) Save(data []byte) error {
	if err := os.WriteFile(g.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", g.path, err)
	}
	return nil
}

// Load returns the whole file contents.
// Returns ErrMissing if the file has been removed since Open.
func (g *Gateway) Load() ([]byte, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, g.path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", g.path, err)
	}
	return data, nil
}
