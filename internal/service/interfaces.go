package service

import (
	"context"

	"github.com/MKhiriev/expense-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration and credential verification on the
// server side. Passwords arrive in plaintext over the transport and are
// HMAC-hashed before they touch storage.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
}

// ExpenseService is the server-side business layer over encrypted expense
// rows. It never inspects the ciphertext fields; it only enforces ownership
// and shapes the repository results.
type ExpenseService interface {
	GetByDate(ctx context.Context, userID int64, date models.Date) ([]models.Expense, error)
	ReplaceForDate(ctx context.Context, userID int64, date models.Date, expenses []models.Expense) ([]models.Expense, error)
	GetAll(ctx context.Context, userID int64) ([]models.Expense, error)
	GetByRange(ctx context.Context, userID int64, rng models.DateRange) ([]models.Expense, error)
	Update(ctx context.Context, expense models.Expense) (models.Expense, error)
	Delete(ctx context.Context, userID int64, id int64) error
}

// AppInfoService exposes build/runtime information about the application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
