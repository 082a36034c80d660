package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_service_mock.go -package=mock

// KeyService owns all client-side cryptography of the per-user isolation
// scheme. It knows nothing about the network, the database, or sessions.
//
// Scheme:
//
//	Key        = DeriveKey(password, username)      (login)
//	Ciphertext = EncryptField(plaintext, Key)       (before upload)
//	Plaintext  = DecryptField(ciphertext, Key)      (after download)
//
// The key lives only in client memory for the duration of a session and is
// recomputed from the password at every login; the server never sees it.
type KeyService interface {
	// DeriveKey derives a 256-bit symmetric key from the user's password.
	// The salt is computed from the username, so the same (password,
	// username) pair yields the same key on any client with no stored
	// per-user secret and no network round trip. Deterministic and total:
	// any string inputs produce a key.
	DeriveKey(password, username string) []byte

	// EncryptField encrypts a single scalar field value with the derived
	// key using an authenticated cipher. The result is a transport-safe
	// text string (base64 of nonce‖ciphertext). Each field is sealed
	// independently so corruption of one field does not take the others
	// down with it.
	EncryptField(plaintext string, key []byte) (string, error)

	// DecryptField reverses EncryptField. A wrong key, a flipped byte, or
	// malformed input fails with an error — never with plausible-looking
	// plaintext. Callers must not treat the returned string as valid
	// domain data when err is non-nil.
	DecryptField(ciphertext string, key []byte) (string, error)
}
