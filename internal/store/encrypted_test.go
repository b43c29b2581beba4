package store

import (
	"bytes"
	"strings"
	"testing"

	"gramgrid/internal/encryption"
)

func TestEncryptedStore_RoundTrip(t *testing.T) {
	inner := NewMemoryStore()
	s := NewEncryptedStore(inner, encryption.NewTestCodec())

	plain := []byte(`[{"id":"u1","email":"a@b.c"}]`)
	if err := s.Put("village_users", plain); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, ok, err := s.Get("village_users")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v; want present", ok, err)
	}
	if !bytes.Equal(got, plain) {
		t.Errorf("Get() = %q, want the original plaintext", got)
	}
}

func TestEncryptedStore_ValueAtRestIsNotPlaintext(t *testing.T) {
	inner := NewMemoryStore()
	s := NewEncryptedStore(inner, encryption.NewTestCodec())

	plain := []byte(`[{"id":"u1"}]`)
	if err := s.Put("village_users", plain); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	raw, ok, err := inner.Get("village_users")
	if err != nil || !ok {
		t.Fatalf("inner Get() = ok %v, err %v", ok, err)
	}
	if bytes.Equal(raw, plain) {
		t.Error("value at rest equals plaintext")
	}
}

func TestEncryptedStore_DecryptFailureIsAnError(t *testing.T) {
	inner := NewMemoryStore()
	s := NewEncryptedStore(inner, encryption.NewTestCodec())

	// Plant a value that did not go through the codec. Unlike a corrupt
	// collection, this must surface as an error, never read as empty.
	if err := inner.Put("village_users", []byte("not encrypted")); err != nil {
		t.Fatalf("inner Put() error: %v", err)
	}

	_, _, err := s.Get("village_users")
	if err == nil {
		t.Fatal("Get() of an undecryptable value did not fail")
	}
	if !strings.Contains(err.Error(), "decrypting") {
		t.Errorf("Get() error = %v, want a decryption error", err)
	}
}

func TestEncryptedStore_AbsentKeyStaysAbsent(t *testing.T) {
	s := NewEncryptedStore(NewMemoryStore(), encryption.NewTestCodec())

	if _, ok, err := s.Get("missing"); ok || err != nil {
		t.Errorf("Get() = ok %v, err %v; want absent, nil", ok, err)
	}
}

func TestEncryptedStore_Delete(t *testing.T) {
	inner := NewMemoryStore()
	s := NewEncryptedStore(inner, encryption.NewTestCodec())

	if err := s.Put("k", []byte("v")); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok, _ := inner.Get("k"); ok {
		t.Error("inner store still holds the key after Delete()")
	}
}
