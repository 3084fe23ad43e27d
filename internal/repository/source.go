package repository

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrOutsideSource is returned for names that are not local to the source directory.
var ErrOutsideSource = errors.New("name escapes source directory")

// Source is the read primitive the repository depends on.
type Source interface {
	ReadFile(name string) ([]byte, error)
}

// FsSource reads documents from a directory of an afero filesystem.
// Only local names (see filepath.IsLocal) are accepted.
type FsSource struct {
	fs afero.Fs
}

// NewSource creates a Source rooted at dir on the given filesystem.
func NewSource(fs afero.Fs, dir string) *FsSource {
	return &FsSource{fs: afero.NewBasePathFs(fs, dir)}
}

// NewOsSource creates a Source rooted at dir on the local disk.
func NewOsSource(dir string) *FsSource {
	return NewSource(afero.NewOsFs(), dir)
}

// ReadFile returns the whole content of the named document.
func (s *FsSource) ReadFile(name string) ([]byte, error) {
	// BasePathFs only compares string prefixes, so "../data-x" passes for "/data".
	if !filepath.IsLocal(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: ErrOutsideSource}
	}

	return afero.ReadFile(s.fs, name)
}
