package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pagesync/internal/domain"
	"pagesync/internal/ports"
)

// SourceReader implements ports.SourceReader over a workspace directory
type SourceReader struct {
	root string
}

// Ensure SourceReader implements ports.SourceReader
var _ ports.SourceReader = (*SourceReader)(nil)

// NewSourceReader creates a reader resolving relative paths against root
func NewSourceReader(root string) *SourceReader {
	return &SourceReader{root: ExpandHome(root)}
}

// Root returns the workspace directory
func (r *SourceReader) Root() string {
	return r.root
}

// ReadSource reads path in full. Relative paths are resolved against the
// workspace root; invalid UTF-8 is replaced rather than rejected.
func (r *SourceReader) ReadSource(path string) (string, error) {
	full := path
	if !filepath.IsAbs(path) {
		full = filepath.Join(r.root, path)
	}

	info, err := os.Stat(full)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", full)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return "", err
	}
	return domain.NormalizeText(data), nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
