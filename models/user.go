package models

import "time"

// User represents an account entity used for authentication and for scoping
// expense rows to their owner. Sensitive fields must never be exposed
// outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user. It doubles as
	// the value of the User-ID request header on authenticated calls.
	UserID int64 `json:"user_id,omitempty"`

	// Username is the unique login identifier. It is also the public salt
	// input for client-side key derivation, so it must never change after
	// registration.
	Username string `json:"username"`

	// Password carries the plaintext password only in transit between the
	// client form and the registration/login endpoints. It is never
	// persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the server-side HMAC-SHA256 of the password.
	// Persistence-layer only, never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
