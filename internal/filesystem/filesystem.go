package filesystem

import (
	"io/fs"
	"os"
)

// Filesystem abstracts the few filesystem operations path discovery needs,
// so tests can simulate missing or unreadable paths without touching disk.
type Filesystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}

// DefaultFS implements Filesystem using the standard os package.
// It represents the real, underlying filesystem of the host.
type DefaultFS struct{}

func (DefaultFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (DefaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}
