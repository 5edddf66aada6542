package store

import (
	"errors"
	"io/fs"
	"os"
)

// File is a Backend keeping the document in a local file, replacing it
// atomically on save.
type File struct {
	path string
}

// NewFile provides File backend instance for given path
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads the whole document
func (f *File) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	return data, err
}

// Save writes the whole document through a temporary file and rename
func (f *File) Save(data []byte) error {
	tmp := f.path + ".tmp"

	err := os.WriteFile(tmp, data, 0644)
	if err != nil {
		return err
	}

	return os.Rename(tmp, f.path)
}
