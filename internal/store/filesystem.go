package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gramgrid/internal/village"
)

// FileStore is a filesystem-based implementation of the Store interface.
// Each key becomes one file under the root directory:
//
//	<root>/
//	  village_users.json
//	  village_session.json
//	  ...
//
// Writes go through a temp file plus rename so a replaced collection is
// never observed half-written.
type FileStore struct {
	root string
}

// NewFileStore creates a filesystem store rooted at the given path.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{root: root}, nil
}

// path maps a storage key to its file. Keys are prefix+collection names and
// contain no separators, but reject anything path-like defensively.
func (f *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return filepath.Join(f.root, key+".json"), nil
}

// Get retrieves the value for a key.
func (f *FileStore) Get(key string) ([]byte, bool, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, true, nil
}

// Put stores the value for a key using an atomic write (temp file + rename).
func (f *FileStore) Put(key string, value []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	return f.writeFile(p, value)
}

// Delete removes a key. Deleting a missing key is not an error.
func (f *FileStore) Delete(key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// ValidateSetup verifies that the store root is an accessible directory.
func (f *FileStore) ValidateSetup() error {
	info, err := os.Stat(f.root)
	if err != nil {
		return fmt.Errorf("store root not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("store root is not a directory: %s", f.root)
	}
	return nil
}

// writeFile writes data to destPath using atomic write (temp file + rename).
func (f *FileStore) writeFile(destPath string, data []byte) error {
	dir := filepath.Dir(destPath)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// Compile-time check that FileStore implements village.Store
var _ village.Store = (*FileStore)(nil)
