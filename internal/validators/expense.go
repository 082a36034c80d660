// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/expense-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the server-assigned row identifier of an expense.
	FieldID = "id"

	// FieldUserID targets the owner identifier of an expense or request.
	FieldUserID = "user_id"

	// FieldDate targets the calendar day an expense belongs to.
	FieldDate = "date"

	// FieldAmount targets the encrypted amount field of an expense row.
	FieldAmount = "amount"

	// FieldCategory targets the encrypted category field of an expense row.
	FieldCategory = "category"

	// FieldUsername targets the account name of a user.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a user before hashing.
	FieldPassword = "password"
)

// ExpenseValidator implements the Validator interface for the expense domain
// models: Expense, []Expense, DateRange and User.
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
// The ciphertext fields are only checked for presence; their content is
// opaque to the server and never inspected.
type ExpenseValidator struct {
}

// NewExpenseValidator constructs a new ExpenseValidator and returns it as the
// Validator interface.
func NewExpenseValidator() Validator {
	return &ExpenseValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Expense / *models.Expense
//   - []models.Expense
//   - models.DateRange / *models.DateRange
//   - models.User / *models.User
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *ExpenseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Expense:
		return v.validateExpense(ctx, value, fields...)
	case *models.Expense:
		return v.validateExpense(ctx, *value, fields...)

	case []models.Expense:
		for i, expense := range value {
			if err := v.validateExpense(ctx, expense, fields...); err != nil {
				return fmt.Errorf("validation error at index %d: %w", i, err)
			}
		}
		return nil

	case models.DateRange:
		return v.validateDateRange(ctx, value)
	case *models.DateRange:
		return v.validateDateRange(ctx, *value)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateExpense validates a single Expense row.
//
// Default validated fields (when none specified):
// UserID, Date, Amount, Category. FieldID is opt-in because rows inside a
// replace-for-date upload legitimately carry a zero id.
//
// Returns the first encountered validation error or nil.
func (v *ExpenseValidator) validateExpense(_ context.Context, expense models.Expense, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDate, FieldAmount, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if expense.ID <= 0 {
				return ErrInvalidExpenseID
			}
		case FieldUserID:
			if expense.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldDate:
			if expense.Date.IsZero() {
				return ErrEmptyDate
			}
		case FieldAmount:
			if expense.Amount == "" {
				return ErrEmptyAmount
			}
		case FieldCategory:
			if expense.Category == "" {
				return ErrEmptyCategory
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDateRange enforces that both ends are set and that the start does
// not lie after the end. A single-day range (start == end) is valid.
func (v *ExpenseValidator) validateDateRange(_ context.Context, rng models.DateRange) error {
	if rng.StartDate.IsZero() || rng.EndDate.IsZero() {
		return ErrEmptyDate
	}
	if rng.StartDate.After(rng.EndDate.Time) {
		return ErrInvalidDateRange
	}
	return nil
}

// validateUser validates account credentials.
//
// Default validated fields: Username, Password. Password length policy lives
// in the auth service because it is configuration-dependent; this check only
// guards against structurally empty credentials.
func (v *ExpenseValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if user.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldUserID:
			if user.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
