// Package scan classifies paths and enumerates directory entries without
// decoding anything.
package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// Kind describes what a path names on disk.
type Kind int

const (
	KindOther Kind = iota // missing, device, socket, ...
	KindFile
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "other"
	}
}

// Classify reports whether path is a regular file, a directory or neither.
// Symlinks are followed.
func Classify(path string) Kind {
	fi, err := os.Stat(path)
	if err != nil {
		return KindOther
	}
	switch {
	case fi.Mode().IsRegular():
		return KindFile
	case fi.IsDir():
		return KindDir
	default:
		return KindOther
	}
}

// List returns the immediate entries of dir as joined paths, sorted by name.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// Filter rejects paths by extension before any decode is attempted.
type Filter struct {
	Rejected map[string]bool // lower-case extensions including the dot
}

// NewFilter returns the default filter, which refuses executables.
func NewFilter() *Filter {
	return &Filter{
		Rejected: map[string]bool{".exe": true},
	}
}

// Rejects reports whether path carries a rejected extension.
func (f *Filter) Rejects(path string) bool {
	if f == nil {
		return false
	}
	return f.Rejected[strings.ToLower(filepath.Ext(path))]
}
