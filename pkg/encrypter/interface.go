package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Encrypter provides symmetric encryption for stored credentials and
// password hashing for dashboard users.
// Implementations are safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

// New creates a new Encrypter with the provided key (16, 24, or 32 bytes for AES).
func New(key string) (Encrypter, error) {
	keyBytes := []byte(key)
	if err := validateKey(keyBytes); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &implEncrypter{gcm: gcm}, nil
}

func validateKey(key []byte) error {
	n := len(key)
	if n != AESKeyLen128 && n != AESKeyLen192 && n != AESKeyLen256 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, n)
	}
	return nil
}
