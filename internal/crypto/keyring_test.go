// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	svc := NewKeyService()

	first := svc.DeriveKey("password123", "alice")
	second := svc.DeriveKey("password123", "alice")

	require.Len(t, first, 32)
	assert.Equal(t, first, second)
}

func TestDeriveKey_DifferentUsernames(t *testing.T) {
	svc := NewKeyService()

	aliceKey := svc.DeriveKey("password123", "alice")
	bobKey := svc.DeriveKey("password123", "bob")

	assert.NotEqual(t, aliceKey, bobKey)
}

func TestDeriveKey_DifferentPasswords(t *testing.T) {
	svc := NewKeyService()

	k1 := svc.DeriveKey("password123", "alice")
	k2 := svc.DeriveKey("password124", "alice")

	assert.NotEqual(t, k1, k2)
}

func TestDeriveKey_TotalOverAnyInput(t *testing.T) {
	svc := NewKeyService()

	tests := []struct {
		name     string
		password string
		username string
	}{
		{"empty password", "", "alice"},
		{"empty username", "secret", ""},
		{"both empty", "", ""},
		{"unicode", "пароль", "алиса"},
		{"long inputs", string(make([]byte, 4096)), string(make([]byte, 4096))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := svc.DeriveKey(tt.password, tt.username)
			assert.Len(t, key, 32)
		})
	}
}

func TestEncryptField_RoundTrip(t *testing.T) {
	svc := NewKeyService()
	key := svc.DeriveKey("password123", "alice")

	tests := []struct {
		name  string
		plain string
	}{
		{"amount", "100.5"},
		{"category", "Food"},
		{"notes", "lunch with team"},
		{"empty string", ""},
		{"unicode", "кофе ☕"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := svc.EncryptField(tt.plain, key)
			require.NoError(t, err)
			require.NotEqual(t, tt.plain, ct)

			got, err := svc.DecryptField(ct, key)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, got)
		})
	}
}

func TestEncryptField_OutputIsTransportSafe(t *testing.T) {
	svc := NewKeyService()
	key := svc.DeriveKey("password123", "alice")

	ct, err := svc.EncryptField("42.0", key)
	require.NoError(t, err)

	// the ciphertext travels inside JSON strings, so it must be valid base64
	_, err = base64.StdEncoding.DecodeString(ct)
	assert.NoError(t, err)
}

func TestEncryptField_NonGreedyNonces(t *testing.T) {
	svc := NewKeyService()
	key := svc.DeriveKey("password123", "alice")

	first, err := svc.EncryptField("same plaintext", key)
	require.NoError(t, err)
	second, err := svc.EncryptField("same plaintext", key)
	require.NoError(t, err)

	// a fresh nonce per call means equal plaintexts never collide
	assert.NotEqual(t, first, second)
}

func TestEncryptField_InvalidKeyLength(t *testing.T) {
	svc := NewKeyService()

	_, err := svc.EncryptField("data", []byte("short"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key length")
}

func TestDecryptField_WrongKey(t *testing.T) {
	svc := NewKeyService()
	aliceKey := svc.DeriveKey("password123", "alice")
	bobKey := svc.DeriveKey("hunter2", "bob")

	ct, err := svc.EncryptField("secret notes", aliceKey)
	require.NoError(t, err)

	_, err = svc.DecryptField(ct, bobKey)
	assert.Error(t, err)
}

func TestDecryptField_TamperedCiphertext(t *testing.T) {
	svc := NewKeyService()
	key := svc.DeriveKey("password123", "alice")

	ct, err := svc.EncryptField("100.0", key)
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(ct)
	require.NoError(t, err)

	// flip one byte at every position; each flip must be detected
	for i := range blob {
		corrupted := make([]byte, len(blob))
		copy(corrupted, blob)
		corrupted[i] ^= 0x01

		_, err := svc.DecryptField(base64.StdEncoding.EncodeToString(corrupted), key)
		assert.Error(t, err, "flip at byte %d went undetected", i)
	}
}

func TestDecryptField_MalformedInput(t *testing.T) {
	svc := NewKeyService()
	key := svc.DeriveKey("password123", "alice")

	tests := []struct {
		name  string
		input string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"empty", ""},
		{"too short for nonce", base64.StdEncoding.EncodeToString([]byte("tiny"))},
		{"plaintext passthrough attempt", "Food"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.DecryptField(tt.input, key)
			assert.Error(t, err)
		})
	}
}
