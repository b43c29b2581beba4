package village

// Store provides an interface for persistence backends.
// Keys are opaque strings; values are serialized collection blobs.
// A Put replaces the previous value for the key in a single call.
type Store interface {
	// Get retrieves the value for a key.
	// The second return is false when the key does not exist.
	Get(key string) ([]byte, bool, error)

	// Put stores the value for a key, replacing any previous value.
	// Backends must make the replacement atomic: readers never observe
	// a partially written value.
	Put(key string, value []byte) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key string) error

	// ValidateSetup verifies that the store is accessible and properly configured.
	ValidateSetup() error
}
