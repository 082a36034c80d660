package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidExpenseID = errors.New("invalid expense ID")
	ErrEmptyDate        = errors.New("expense date is required")
	ErrEmptyAmount      = errors.New("amount ciphertext is required")
	ErrEmptyCategory    = errors.New("category ciphertext is required")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
)
