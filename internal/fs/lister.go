// Package fs provides the directory listing boundary for the panes.
package fs

import (
	"os"
	"path/filepath"
)

// Lister reads the direct children of a directory.
type Lister struct{}

// NewLister initialises a lister instance.
func NewLister() *Lister {
	return &Lister{}
}

// List returns the regular files directly inside path, joined onto path.
// Unreadable or missing paths yield an empty result; a child whose metadata
// cannot be read is excluded rather than failing the call. The result is
// never nil and preserves directory iteration order.
func (l *Lister) List(path string) []string {
	files := []string{}
	entries, err := os.ReadDir(path)
	if err != nil {
		return files
	}
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	return files
}
