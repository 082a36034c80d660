package service

import (
	"context"
	"crypto/hmac"
	"errors"
	"fmt"

	"github.com/MKhiriev/expense-keeper/internal/config"
	"github.com/MKhiriev/expense-keeper/internal/logger"
	"github.com/MKhiriev/expense-keeper/internal/store"
	"github.com/MKhiriev/expense-keeper/internal/utils"
	"github.com/MKhiriev/expense-keeper/models"
)

// minUsernameLength is the shortest username registration accepts.
const minUsernameLength = 3

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and HMAC-SHA256 for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashKey is the HMAC secret used when hashing user passwords before
	// storage or comparison. Must match the value used at registration time.
	hashKey string

	// minPasswordLength is the registration password policy.
	minPasswordLength int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		hashKey:           cfg.PasswordHashKey,
		minPasswordLength: cfg.MinPasswordLength,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Username and Password are non-empty and that each
// meets its minimum length, hashes the password with the configured HMAC
// key, and delegates persistence to the UserRepository. The plaintext
// password never reaches storage.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrUsernameTooShort if the username has fewer than three characters.
//   - ErrPasswordTooShort if the password fails the length policy.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if len(user.Username) < minUsernameLength {
		log.Error().Str("username", user.Username).Msg("username shorter than minimum")
		return models.User{}, ErrUsernameTooShort
	}
	if len(user.Password) < a.minPasswordLength {
		log.Error().Str("username", user.Username).Msg("password shorter than configured minimum")
		return models.User{}, ErrPasswordTooShort
	}

	user.PasswordHash = utils.HashString(user.Password, a.hashKey)
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Username and Password are non-empty, looks up the
// account by username, hashes the supplied password, and compares the digests
// in constant time.
//
// An unknown username and a wrong password both collapse into
// ErrInvalidCredentials, so a caller probing the login endpoint cannot tell
// which one it hit.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	suppliedHash := utils.HashString(user.Password, a.hashKey)
	if !hmac.Equal([]byte(foundUser.PasswordHash), []byte(suppliedHash)) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
