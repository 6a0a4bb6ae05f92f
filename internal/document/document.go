// Package document reads and writes plain text documents.
package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"textkit/internal/domain"
)

// DefaultExtension is appended to save paths that have no extension.
const DefaultExtension = ".txt"

// Read loads the whole file at path as UTF-8 text. A leading byte order mark
// is dropped and invalid sequences are replaced with U+FFFD.
func Read(path string) (domain.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return domain.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return domain.Document{Path: path, Content: string(data)}, nil
}

// Write replaces the file at path with content. When path has no extension,
// ext is appended. It returns the path actually written.
func Write(path, content, ext string) (string, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	if filepath.Ext(path) == "" {
		path += ext
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
