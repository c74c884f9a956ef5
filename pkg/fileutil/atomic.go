package fileutil

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/tagwm/internal/errors"
)

// ErrExists is returned by WriteNew when the target already exists.
var ErrExists = errors.New("file already exists")

// AtomicWriteFile writes data through a temp file in the same directory
// and renames it over path, so readers never observe a partial document.
// Parent directories are created as needed.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating parent directory")
	}

	tmp, err := os.CreateTemp(dir, ".tagwm-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	tmpName = ""
	return nil
}

// WriteNew atomically writes data to path unless path already exists.
func WriteNew(path string, data []byte, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Wrapf(ErrExists, "%s", path)
	}
	return AtomicWriteFile(path, data, perm)
}
