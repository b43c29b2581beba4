package store

import (
	"sync"

	"gramgrid/internal/village"
)

// MemoryStore is an in-memory implementation of the Store interface.
// It is useful for tests and throwaway demo sessions; nothing survives
// process exit. Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates a new empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get retrieves the value for a key.
func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers can't mutate stored state.
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Put stores the value for a key, replacing any previous value.
func (m *MemoryStore) Put(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = stored
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// ValidateSetup always succeeds for the in-memory store.
func (m *MemoryStore) ValidateSetup() error {
	return nil
}

// Compile-time check that MemoryStore implements village.Store
var _ village.Store = (*MemoryStore)(nil)
