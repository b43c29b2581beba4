package encryption

import (
	"bytes"
	"fmt"
)

// testPrefix marks blobs "encrypted" by the TestCodec.
var testPrefix = []byte("test-cipher:")

// TestCodec is a trivially reversible codec for tests: it prefixes the
// plaintext with a marker. It lets store-wrapper tests verify that values
// at rest differ from plaintext without any key material.
type TestCodec struct{}

func NewTestCodec() *TestCodec { return &TestCodec{} }

func (*TestCodec) Encrypt(plain []byte) ([]byte, error) {
	return append(append([]byte{}, testPrefix...), plain...), nil
}

func (*TestCodec) Decrypt(cipher []byte) ([]byte, error) {
	if !bytes.HasPrefix(cipher, testPrefix) {
		return nil, fmt.Errorf("value is not test-cipher encrypted")
	}
	return append([]byte{}, cipher[len(testPrefix):]...), nil
}
