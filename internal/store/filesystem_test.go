package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	return s
}

func TestFileStore_PutGetDelete(t *testing.T) {
	s := newTestFileStore(t)

	if _, ok, err := s.Get("village_users"); ok || err != nil {
		t.Errorf("Get() before Put() = ok %v, err %v; want absent, nil", ok, err)
	}

	if err := s.Put("village_users", []byte(`[{"id":"u1"}]`)); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	got, ok, err := s.Get("village_users")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v; want present", ok, err)
	}
	if !bytes.Equal(got, []byte(`[{"id":"u1"}]`)) {
		t.Errorf("Get() = %q", got)
	}

	if err := s.Delete("village_users"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok, _ := s.Get("village_users"); ok {
		t.Error("Get() found key after Delete()")
	}
	if err := s.Delete("village_users"); err != nil {
		t.Errorf("Delete() of missing key error: %v", err)
	}
}

func TestFileStore_OneFilePerKey(t *testing.T) {
	root := t.TempDir()
	s, err := NewFileStore(root)
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}

	if err := s.Put("village_users", []byte(`[]`)); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "village_users.json")); err != nil {
		t.Errorf("expected one .json file per key: %v", err)
	}

	// No temp files left behind.
	matches, err := filepath.Glob(filepath.Join(root, ".tmp-*"))
	if err != nil {
		t.Fatalf("Glob() error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("temp files left after write: %v", matches)
	}
}

func TestFileStore_RejectsPathLikeKeys(t *testing.T) {
	s := newTestFileStore(t)

	for _, key := range []string{"", "a/b", `a\b`, "../escape", "a..b"} {
		if err := s.Put(key, []byte("x")); err == nil {
			t.Errorf("Put(%q) accepted a path-like key", key)
		}
		if _, _, err := s.Get(key); err == nil {
			t.Errorf("Get(%q) accepted a path-like key", key)
		}
	}
}

func TestFileStore_ValidateSetup(t *testing.T) {
	s := newTestFileStore(t)
	if err := s.ValidateSetup(); err != nil {
		t.Errorf("ValidateSetup() error: %v", err)
	}

	gone := &FileStore{root: filepath.Join(t.TempDir(), "missing")}
	if err := gone.ValidateSetup(); err == nil {
		t.Error("ValidateSetup() passed for a missing root")
	}
}

func TestFileStore_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "store")
	if _, err := NewFileStore(root); err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		t.Errorf("NewFileStore() did not create the root directory: %v", err)
	}
}
