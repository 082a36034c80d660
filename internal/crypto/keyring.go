// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// keyService is the private implementation of [KeyService].
type keyService struct {
	// PBKDF2 tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target, but note that changing iterations
	// changes every derived key: existing ciphertext becomes unreadable.
	iterations int
	keyLen     int
	saltLen    int
}

// NewKeyService constructs a [KeyService] with the derivation parameters the
// rest of the system assumes:
//   - PBKDF2-HMAC-SHA256
//   - iterations: 100 000
//   - salt:       leading 16 bytes of SHA-256(username)
//   - key length: 32 bytes (256 bits)
func NewKeyService() KeyService {
	return &keyService{
		iterations: 100_000,
		keyLen:     32, // 256 bits
		saltLen:    16,
	}
}

// DeriveKey implements [KeyService]. The salt is derived from the username
// rather than generated randomly, which trades salt secrecy for a stateless
// scheme: no salt table, no sync between devices. The username is unique per
// account, so equal passwords on different accounts still produce different
// keys.
func (k *keyService) DeriveKey(password, username string) []byte {
	digest := sha256.Sum256([]byte(username))
	salt := digest[:k.saltLen]

	return pbkdf2.Key([]byte(password), salt, k.iterations, k.keyLen, sha256.New)
}

// EncryptField implements [KeyService]. It seals plaintext with AES-256-GCM
// under a fresh random 12-byte nonce and returns Base64(nonce ‖ ciphertext).
// The GCM tag gives integrity: any later byte flip is caught at decryption.
// Returns an error if the key length is wrong or the nonce read fails.
func (k *keyService) EncryptField(plaintext string, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so DecryptField can split it out.
	ct := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ct...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptField implements [KeyService]. It Base64-decodes the blob, splits
// out the nonce, and opens the ciphertext. An error here almost always means
// the caller derived the key from the wrong password — or the stored value
// was tampered with; the two are indistinguishable on purpose.
func (k *keyService) DecryptField(ciphertext string, key []byte) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}
	nonce, ct := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt field: %w", err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
