package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileStorage persists each key as one JSON blob under dir, named
// <namespace>_<key>.json.
type FileStorage struct {
	fs        afero.Fs
	dir       string
	namespace string
}

func NewFileStorage(fs afero.Fs, dir, namespace string) (*FileStorage, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}

	return &FileStorage{
		fs:        fs,
		dir:       dir,
		namespace: namespace,
	}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.json", s.namespace, key))
}

func (s *FileStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	return data, true, nil
}

func (s *FileStorage) Set(_ context.Context, key string, value []byte) error {
	if err := afero.WriteFile(s.fs, s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *FileStorage) Delete(_ context.Context, key string) error {
	if err := s.fs.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
