package store

import (
	"context"

	"github.com/MKhiriev/expense-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, user models.User) (models.User, error)
}

// ExpenseRepository persists encrypted expense rows. Every method takes the
// owning user's id and intersects it with any other filter; no method queries
// by record id alone, so a row can never be reached through another user's
// identity.
type ExpenseRepository interface {
	// ListByDate returns the user's expenses for a single calendar day.
	ListByDate(ctx context.Context, userID int64, date models.Date) ([]models.Expense, error)

	// ReplaceForDate atomically replaces the user's expense set for one day:
	// existing rows for (userID, date) are deleted and the given rows are
	// inserted in a single transaction. The stored rows are returned with
	// server-assigned ids.
	ReplaceForDate(ctx context.Context, userID int64, date models.Date, expenses []models.Expense) ([]models.Expense, error)

	// ListAll returns every expense owned by the user.
	ListAll(ctx context.Context, userID int64) ([]models.Expense, error)

	// ListByRange returns the user's expenses with dates inside the inclusive
	// range.
	ListByRange(ctx context.Context, userID int64, rng models.DateRange) ([]models.Expense, error)

	// UpdateByID updates a single expense row matched by both id and userID
	// and reports the number of rows affected. A row owned by another user is
	// simply not matched: zero rows, nil error.
	UpdateByID(ctx context.Context, expense models.Expense) (int64, error)

	// DeleteByID deletes a single expense row matched by both id and userID
	// and reports the number of rows affected.
	DeleteByID(ctx context.Context, userID int64, id int64) (int64, error)
}
