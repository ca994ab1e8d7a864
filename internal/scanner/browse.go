// internal/scanner/browse.go
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrNotFound indicates the path is not an existing directory.
	ErrNotFound = errors.New("path not found")

	// ErrPermission indicates the directory could not be read.
	ErrPermission = errors.New("permission denied")
)

// Dir is one subdirectory in a listing.
type Dir struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// Listing is the result of browsing a directory.
type Listing struct {
	Current string  `json:"current"`
	Parent  *string `json:"parent"`
	Items   []Dir   `json:"items"`
}

// Browse lists the subdirectories of path in name order. Parent is nil at
// the filesystem root.
func Browse(path string) (Listing, error) {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return Listing{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return Listing{}, fmt.Errorf("%w: %s", ErrPermission, path)
		}
		return Listing{}, fmt.Errorf("read %s: %w", path, err)
	}

	items := make([]Dir, 0, len(entries))
	for _, entry := range entries {
		full := filepath.Join(path, entry.Name())
		if fi, err := os.Stat(full); err == nil && fi.IsDir() {
			items = append(items, Dir{Name: entry.Name(), Path: full, Type: "directory"})
		}
	}

	l := Listing{Current: path, Items: items}
	if parent := filepath.Dir(path); parent != path {
		l.Parent = &parent
	}
	return l, nil
}
