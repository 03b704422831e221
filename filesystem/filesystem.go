// Package filesystem routes every file access through a swappable afero backend,
// so tests can run against memory instead of the user's config and cache dirs.
package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

var backend afero.Fs = afero.NewOsFs()

// API returns the current backend.
func API() afero.Afero {
	return afero.Afero{Fs: backend}
}

// SetOsFs switches to the real filesystem.
func SetOsFs() {
	backend = afero.NewOsFs()
}

// SetMemMapFs switches to an empty in-memory filesystem.
func SetMemMapFs() {
	backend = afero.NewMemMapFs()
}

// GacheFs lets gache caches read and write through the current backend.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
