package store

import (
	"fmt"
	"io"

	"gramgrid/internal/village"
)

// Codec encrypts and decrypts stored blobs.
type Codec interface {
	Encrypt(plain []byte) ([]byte, error)
	Decrypt(cipher []byte) ([]byte, error)
}

// EncryptedStore wraps another store and encrypts every value at rest.
// A decryption failure is a plain error, not corruption recovery: reading
// real data with the wrong key must not silently wipe it.
type EncryptedStore struct {
	inner village.Store
	codec Codec
}

// NewEncryptedStore wraps inner so all values pass through codec.
func NewEncryptedStore(inner village.Store, codec Codec) *EncryptedStore {
	return &EncryptedStore{inner: inner, codec: codec}
}

// Get retrieves and decrypts the value for a key.
func (e *EncryptedStore) Get(key string) ([]byte, bool, error) {
	cipher, ok, err := e.inner.Get(key)
	if err != nil || !ok {
		return nil, ok, err
	}
	plain, err := e.codec.Decrypt(cipher)
	if err != nil {
		return nil, false, fmt.Errorf("decrypting %s: %w", key, err)
	}
	return plain, true, nil
}

// Put encrypts and stores the value for a key.
func (e *EncryptedStore) Put(key string, value []byte) error {
	cipher, err := e.codec.Encrypt(value)
	if err != nil {
		return fmt.Errorf("encrypting %s: %w", key, err)
	}
	return e.inner.Put(key, cipher)
}

// Delete removes a key from the inner store.
func (e *EncryptedStore) Delete(key string) error {
	return e.inner.Delete(key)
}

// ValidateSetup defers to the inner store.
func (e *EncryptedStore) ValidateSetup() error {
	return e.inner.ValidateSetup()
}

// Close releases the inner store when it holds resources.
func (e *EncryptedStore) Close() error {
	if c, ok := e.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Compile-time check that EncryptedStore implements village.Store
var _ village.Store = (*EncryptedStore)(nil)
