package store

import (
	"context"

	"github.com/MKhiriev/expense-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ExpenseCacheRepository is the client's local mirror of the server-side
// expense list. Rows are stored exactly as they travel over the wire, with
// amount, category and notes still encrypted, so the cache file is safe to
// keep on disk.
type ExpenseCacheRepository interface {
	// ReplaceAll swaps the user's cached rows for a fresh server snapshot.
	ReplaceAll(ctx context.Context, userID int64, expenses []models.Expense) error

	// GetAll returns every cached row for the user.
	GetAll(ctx context.Context, userID int64) ([]models.Expense, error)
}
