// Package target turns a command-line path into the list of files to OCR.
package target

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrNotFound is returned when the requested path does not exist.
var ErrNotFound = errors.New("path not found")

// Resolve returns the files to process for path.
//
// A file is its own single target. A directory yields every immediate entry
// that is a regular file, following symlinks, sorted by name. Subdirectories
// are not descended into and no extension filtering is done: a non-image
// file is still returned and will fail later at decode time.
func Resolve(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	targets := make([]string, 0, len(entries))
	for _, entry := range entries {
		full := filepath.Join(path, entry.Name())
		fi, err := os.Stat(full)
		if err != nil {
			// Dangling symlink or entry removed since ReadDir.
			continue
		}
		if fi.Mode().IsRegular() {
			targets = append(targets, full)
		}
	}
	sort.Strings(targets)

	return targets, nil
}
