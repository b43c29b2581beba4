package village

import (
	"crypto/sha256"
	"encoding/hex"
)

// passwordSalt is a single fixed value shared by all users. Per-user salts
// would be stronger, but the stored digest format (64 hex chars over
// password+salt) is shared with the seeded demo credentials and kept as-is.
const passwordSalt = "gram_suraksha_2024"

// PasswordHasher computes and verifies salted password digests.
type PasswordHasher struct {
	salt string
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{salt: passwordSalt}
}

// Hash returns the SHA-256 digest of password+salt as lowercase hex.
func (h *PasswordHasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password + h.salt))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the digest for password and compares it to digest.
func (h *PasswordHasher) Verify(password, digest string) bool {
	return h.Hash(password) == digest
}
