package encryption

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"filippo.io/age"

	"gramgrid/internal/config"
)

// AgeCodec encrypts and decrypts collection blobs using filippo.io/age with
// X25519 keys. The public key is stored in plaintext so writes never need
// user interaction; the private key is encrypted with the user's passphrase
// using age's scrypt-based passphrase encryption and must be unlocked once
// per process before any reads.
type AgeCodec struct {
	publicKeyPath  string
	privateKeyPath string
	identity       age.Identity // nil until Unlock
}

// NewAgeCodec creates a new AgeCodec from configuration.
func NewAgeCodec(cfg config.EncryptionConfig) *AgeCodec {
	return &AgeCodec{
		publicKeyPath:  cfg.PublicKeyPath,
		privateKeyPath: cfg.PrivateKeyPath,
	}
}

// Setup generates a new X25519 key pair, stores the public key in
// plaintext, and encrypts the private key with the passphrase.
func (c *AgeCodec) Setup(passphrase string) error {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return fmt.Errorf("generating key pair: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.publicKeyPath), 0700); err != nil {
		return fmt.Errorf("creating public key directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.privateKeyPath), 0700); err != nil {
		return fmt.Errorf("creating private key directory: %w", err)
	}

	if err := os.WriteFile(c.publicKeyPath, []byte(identity.Recipient().String()+"\n"), 0644); err != nil {
		return fmt.Errorf("writing public key: %w", err)
	}

	privFile, err := os.OpenFile(c.privateKeyPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("creating private key file: %w", err)
	}
	defer privFile.Close()

	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return fmt.Errorf("creating scrypt recipient: %w", err)
	}

	w, err := age.Encrypt(privFile, recipient)
	if err != nil {
		return fmt.Errorf("creating encrypted writer: %w", err)
	}
	if _, err := io.WriteString(w, identity.String()+"\n"); err != nil {
		return fmt.Errorf("writing encrypted private key: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing encrypted private key: %w", err)
	}

	return nil
}

// IsConfigured returns true if both key files exist at configured paths.
func (c *AgeCodec) IsConfigured() bool {
	if _, err := os.Stat(c.publicKeyPath); err != nil {
		return false
	}
	if _, err := os.Stat(c.privateKeyPath); err != nil {
		return false
	}
	return true
}

// Unlock decrypts the private key using the passphrase and holds the
// identity in memory for the rest of the process. Returns an error if the
// passphrase is incorrect.
func (c *AgeCodec) Unlock(passphrase string) error {
	privData, err := os.ReadFile(c.privateKeyPath)
	if err != nil {
		return fmt.Errorf("reading private key file: %w", err)
	}

	scryptID, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return fmt.Errorf("creating scrypt identity: %w", err)
	}

	decReader, err := age.Decrypt(bytes.NewReader(privData), scryptID)
	if err != nil {
		return fmt.Errorf("decrypting private key: %w", err)
	}

	keyData, err := io.ReadAll(decReader)
	if err != nil {
		return fmt.Errorf("reading decrypted private key: %w", err)
	}

	identities, err := age.ParseIdentities(bytes.NewReader(keyData))
	if err != nil {
		return fmt.Errorf("parsing private key: %w", err)
	}
	if len(identities) == 0 {
		return fmt.Errorf("no identities found in private key")
	}

	c.identity = identities[0]
	return nil
}

// Encrypt returns the age ciphertext of plain, using the public key only.
func (c *AgeCodec) Encrypt(plain []byte) ([]byte, error) {
	recipient, err := c.loadRecipient()
	if err != nil {
		return nil, fmt.Errorf("loading public key: %w", err)
	}

	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return nil, fmt.Errorf("creating encrypted writer: %w", err)
	}
	if _, err := w.Write(plain); err != nil {
		return nil, fmt.Errorf("encrypting data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}
	return buf.Bytes(), nil
}

// Decrypt returns the plaintext of cipher. Unlock must have been called.
func (c *AgeCodec) Decrypt(cipher []byte) ([]byte, error) {
	if c.identity == nil {
		return nil, fmt.Errorf("codec is locked: call Unlock first")
	}

	r, err := age.Decrypt(bytes.NewReader(cipher), c.identity)
	if err != nil {
		return nil, fmt.Errorf("creating decrypted reader: %w", err)
	}
	plain, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decrypting data: %w", err)
	}
	return plain, nil
}

// loadRecipient reads the public key from disk and parses it.
func (c *AgeCodec) loadRecipient() (age.Recipient, error) {
	pubData, err := os.ReadFile(c.publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("reading public key: %w", err)
	}

	recipients, err := age.ParseRecipients(bytes.NewReader(pubData))
	if err != nil {
		return nil, fmt.Errorf("parsing public key: %w", err)
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("no recipients found in public key file")
	}
	return recipients[0], nil
}
