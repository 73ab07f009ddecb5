// Package output writes recognized text to the terminal or to files.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Suffix is appended to a source file's stem to name its text file.
const Suffix = "_extracted_text.txt"

// SeparatorWidth is the length of the line framing displayed text.
const SeparatorWidth = 20

// Separator is the line printed above and below displayed text.
var Separator = strings.Repeat("=", SeparatorWidth)

// Display writes text to w between two separator lines.
func Display(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", Separator, text, Separator)
	return err
}

// WriteText writes text to path as UTF-8, replacing any existing file.
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// DerivedPath returns the text file path for src inside dir:
// <dir>/<stem>_extracted_text.txt, where stem is the base name of src
// without its final extension.
func DerivedPath(dir, src string) string {
	return filepath.Join(dir, Stem(src)+Suffix)
}

// Stem returns the base name of path without its final extension.
// Names whose only dot is the leading one (".profile") are kept whole.
func Stem(path string) string {
	base := filepath.Base(path)
	trimmed := strings.TrimLeft(base, ".")
	ext := filepath.Ext(trimmed)
	return strings.TrimSuffix(base, ext)
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
