package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/nfrund/cbt/internal/domain"
	"github.com/spf13/afero"
)

// AferoStore serves files from an afero filesystem.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewStaticFs returns the filesystem static resources are read from: dir on
// disk when set, otherwise the embedded assets.
func NewStaticFs(dir string, embedded fs.FS) afero.Fs {
	if dir != "" {
		return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
	}
	return afero.FromIOFS{FS: embedded}
}

// Open opens a file for reading. Missing files return domain.ErrNotFound.
func (s *AferoStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	clean, err := cleanPath(name)
	if err != nil {
		return nil, err
	}
	f, err := s.fs.Open(clean)
	if err != nil {
		return nil, wrapNotFound(name, err)
	}
	return f, nil
}

// Stat returns file information. Directories are reported as not found.
func (s *AferoStore) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	clean, err := cleanPath(name)
	if err != nil {
		return nil, err
	}
	info, err := s.fs.Stat(clean)
	if err != nil {
		return nil, wrapNotFound(name, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	return info, nil
}

// cleanPath rejects paths that would escape the store root.
func cleanPath(name string) (string, error) {
	clean := path.Clean(strings.TrimPrefix(name, "/"))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	return clean, nil
}

func wrapNotFound(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	return fmt.Errorf("open %s: %w", name, err)
}
