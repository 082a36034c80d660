package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for both unknown-username and
	// wrong-password login failures so the response never reveals which
	// part of the credential was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPasswordTooShort is returned at registration when the password is
	// shorter than the configured minimum length.
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrUsernameTooShort is returned at registration when the username has
	// fewer than three characters.
	ErrUsernameTooShort = errors.New("username is too short")

	// ErrInvalidDateRange is returned when a range query's start date is
	// after its end date.
	ErrInvalidDateRange = errors.New("invalid date range")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// Client-side errors wrapping failures of remote calls.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrNoActiveSession  = errors.New("no active session")
)
