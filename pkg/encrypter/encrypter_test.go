package encrypter

import (
	"errors"
	"strings"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef" // 32 bytes

func TestNew(t *testing.T) {
	t.Run("accepts AES key lengths", func(t *testing.T) {
		for _, key := range []string{
			strings.Repeat("k", 16),
			strings.Repeat("k", 24),
			strings.Repeat("k", 32),
		} {
			if _, err := New(key); err != nil {
				t.Errorf("key of %d bytes rejected: %v", len(key), err)
			}
		}
	})

	t.Run("rejects other key lengths", func(t *testing.T) {
		for _, key := range []string{"", "short", strings.Repeat("k", 33)} {
			if _, err := New(key); !errors.Is(err, ErrInvalidKeyLength) {
				t.Errorf("key of %d bytes: expected ErrInvalidKeyLength, got %v", len(key), err)
			}
		}
	})
}

func TestEncryptDecrypt(t *testing.T) {
	enc, err := New(testKey)
	if err != nil {
		t.Fatalf("failed to create encrypter: %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		plaintext := "IGQVJXa-long-lived-access-token"

		ciphertext, err := enc.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("encrypt failed: %v", err)
		}
		if ciphertext == plaintext {
			t.Fatal("ciphertext equals plaintext")
		}

		got, err := enc.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("decrypt failed: %v", err)
		}
		if got != plaintext {
			t.Fatalf("expected %q, got %q", plaintext, got)
		}
	})

	t.Run("nonce makes ciphertexts differ", func(t *testing.T) {
		a, err := enc.Encrypt("same input")
		if err != nil {
			t.Fatal(err)
		}
		b, err := enc.Encrypt("same input")
		if err != nil {
			t.Fatal(err)
		}
		if a == b {
			t.Fatal("two encryptions of the same input must not match")
		}
	})

	t.Run("rejects tampered ciphertext", func(t *testing.T) {
		ciphertext, err := enc.Encrypt("secret")
		if err != nil {
			t.Fatal(err)
		}
		tampered := "A" + ciphertext[1:]
		if tampered == ciphertext {
			tampered = "B" + ciphertext[1:]
		}
		if _, err := enc.Decrypt(tampered); err == nil {
			t.Fatal("expected error for tampered ciphertext")
		}
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		if _, err := enc.Decrypt("not-base64!!"); err == nil {
			t.Fatal("expected error for invalid base64")
		}
		if _, err := enc.Decrypt("YQ=="); !errors.Is(err, ErrCiphertextTooShort) {
			t.Fatalf("expected ErrCiphertextTooShort, got %v", err)
		}
	})

	t.Run("wrong key cannot decrypt", func(t *testing.T) {
		other, err := New(strings.Repeat("x", 32))
		if err != nil {
			t.Fatal(err)
		}
		ciphertext, err := enc.Encrypt("secret")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := other.Decrypt(ciphertext); !errors.Is(err, ErrDecryptionFailed) {
			t.Fatalf("expected ErrDecryptionFailed, got %v", err)
		}
	})
}

func TestPasswordHashing(t *testing.T) {
	enc, err := New(testKey)
	if err != nil {
		t.Fatal(err)
	}

	hash, err := enc.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !enc.CheckPasswordHash("hunter2", hash) {
		t.Error("correct password rejected")
	}
	if enc.CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
