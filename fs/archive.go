// Package fs provides file-based storage for downloaded archives.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/docscrape"
)

// DefaultArchiveDir is the directory, relative to the working directory,
// archives are saved to.
const DefaultArchiveDir = "downloads"

// Ensure ArchiveStore implements docscrape.ArchiveStore at compile time.
var _ docscrape.ArchiveStore = (*ArchiveStore)(nil)

// ArchiveStore saves archives as files in a directory.
type ArchiveStore struct {
	baseDir string
}

// NewArchiveStore creates a new ArchiveStore that writes to the given directory.
func NewArchiveStore(baseDir string) *ArchiveStore {
	return &ArchiveStore{baseDir: baseDir}
}

// Save writes r to name inside the store directory and returns the file path.
// Only the base name of name is used.
func (s *ArchiveStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	base := filepath.Base(name)
	if name == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid archive name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.baseDir, base)
	f, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(fullPath)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return fullPath, nil
}
