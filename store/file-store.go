package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileStore persists payloads as one JSON file per key under a directory.
type FileStore struct {
	dir string
}

var unsetKeyErr = fmt.Errorf("key cannot be empty")

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create store directory %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) filePath(key string) string {
	return filepath.Join(fs.dir, key+".json")
}

func (fs *FileStore) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, unsetKeyErr
	}
	serialized, err := os.ReadFile(fs.filePath(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "failed to read store file")
	}
	return string(serialized), true, nil
}

func (fs *FileStore) Set(key, value string) error {
	if key == "" {
		return unsetKeyErr
	}
	if err := os.WriteFile(fs.filePath(key), []byte(value), 0o644); err != nil {
		return errors.Wrap(err, "failed to write store file")
	}
	return nil
}

func (fs *FileStore) Remove(key string) error {
	if key == "" {
		return unsetKeyErr
	}
	err := os.Remove(fs.filePath(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove store file")
	}
	return nil
}
