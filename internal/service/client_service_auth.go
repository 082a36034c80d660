package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/expense-keeper/internal/adapter"
	"github.com/MKhiriev/expense-keeper/internal/crypto"
	"github.com/MKhiriev/expense-keeper/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	keys    crypto.KeyService
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, keys crypto.KeyService) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, keys: keys}
}

// Register implements ClientAuthService. The password travels to the server
// for HMAC hashing there; it plays no local role until Login derives the
// encryption key from it.
func (a *clientAuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidDataProvided
	}

	err := a.adapter.Register(ctx, models.User{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return nil
}

// Login implements ClientAuthService. The encryption key is derived locally
// from the password and the username-based salt; the server only ever
// verifies the password, it never learns the key.
func (a *clientAuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidDataProvided
	}

	loginResponse, err := a.adapter.Login(ctx, models.User{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	key := a.keys.DeriveKey(password, loginResponse.Username)
	session := NewSession(loginResponse.UserID, loginResponse.Username, key)
	for i := range key {
		key[i] = 0
	}

	return session, nil
}
