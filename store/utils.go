package store

import (
	"os"
	"path/filepath"

	"github.com/hamidzr/recents/constant"
)

// CacheDir is the default location for persisted history files.
func CacheDir() string {
	return filepath.Join(os.Getenv("HOME"), ".cache", constant.ProjectName)
}
