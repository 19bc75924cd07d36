// internal/normalizer/osfs/store.go
package osfs

import (
	"os"
	"path/filepath"
)

// Store implements normalizer.FileStore on the local filesystem.
// Writes are atomic: readers see either the old or the new content.
type Store struct{}

func New() *Store {
	return &Store{}
}

func (s *Store) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile replaces path through a temp file in the same directory,
// keeping the original permission bits.
func (s *Store) WriteFile(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".cppnorm-*")
	if err != nil {
		return err
	}
	name := tmp.Name()

	// remove the temp file on any failure below
	ok := false
	defer func() {
		if !ok {
			_ = tmp.Close()
			_ = os.Remove(name)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(name, path); err != nil {
		return err
	}

	ok = true
	return nil
}
