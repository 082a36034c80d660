// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the expense-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/expense-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// expense-keeper server. Implementations are responsible for serialisation,
// identity header management, and mapping transport-level errors to the
// sentinel values defined in this package.
//
// Encrypted fields are never touched here: whatever ciphertext the caller
// provides is what goes over the wire.
type ServerAdapter interface {
	// SetUserID stores the identifier that will be attached as the User-ID
	// header to all subsequent authenticated requests. It should be called
	// immediately after a successful Login.
	SetUserID(id int64)

	// UserID returns the identifier currently stored in the adapter, or zero
	// if no login has happened yet.
	UserID() int64

	// Register sends a registration request with the provided credentials.
	// Returns an error if the request fails or the server responds with a
	// non-2xx status (e.g. [ErrConflict] when the username is taken).
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user. On success it stores the returned user id
	// via SetUserID and returns the server's login response.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// GetExpensesByDate fetches the authenticated user's encrypted expense
	// rows for a single day.
	GetExpensesByDate(ctx context.Context, date models.Date) ([]models.Expense, error)

	// SaveExpensesForDate uploads the full encrypted expense set for a day,
	// replacing whatever the server held for that day. Returns the stored
	// rows with server-assigned ids.
	SaveExpensesForDate(ctx context.Context, date models.Date, expenses []models.Expense) ([]models.Expense, error)

	// GetAllExpenses fetches every encrypted expense row the user owns.
	GetAllExpenses(ctx context.Context) ([]models.Expense, error)

	// GetExpensesByRange fetches the user's encrypted expense rows with dates
	// inside the inclusive range.
	GetExpensesByRange(ctx context.Context, rng models.DateRange) ([]models.Expense, error)

	// UpdateExpense modifies a single expense row identified by expense.ID.
	// The server scopes the statement to the authenticated user, so a row
	// that does not exist for this user is a successful no-op.
	UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)

	// DeleteExpense removes a single expense row by id. Like UpdateExpense,
	// an id the user does not own is a successful no-op.
	DeleteExpense(ctx context.Context, id int64) error

	// GetAppVersion fetches the server's application version string.
	GetAppVersion(ctx context.Context) (string, error)

	// Health probes the server's root health endpoint.
	Health(ctx context.Context) (models.HealthResponse, error)
}
