package service

import (
	"context"
	"time"

	"github.com/MKhiriev/expense-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientCodecService converts between the plaintext client representation of
// an expense and the encrypted wire representation. Encoding is fallible;
// decoding is total: a row that cannot be decrypted (wrong key, tampering,
// corruption) comes back as a placeholder record instead of an error, so one
// bad row never hides the rest of the list.
type ClientCodecService interface {
	// EncodeExpense encrypts the amount, category and notes of record with
	// key. The amount is serialised to its canonical decimal string before
	// encryption. Date and ID pass through in plaintext.
	EncodeExpense(record models.ExpenseRecord, key []byte) (models.Expense, error)

	// DecodeExpense decrypts an encrypted row. On any failure the returned
	// record carries zero amount and "[ENCRYPTED]" markers while keeping the
	// plaintext id and date intact.
	DecodeExpense(expense models.Expense, key []byte) models.ExpenseRecord
}

// ClientAuthService handles account registration and login against the
// remote server, including derivation of the session encryption key.
type ClientAuthService interface {
	// Register creates a new account on the server. No session is opened;
	// the caller should follow up with Login.
	Register(ctx context.Context, username, password string) error

	// Login authenticates against the server and derives the encryption key
	// from the supplied credentials. The password is not retained.
	Login(ctx context.Context, username, password string) (*Session, error)
}

// ClientExpenseService is the client-side business layer: it moves encrypted
// rows between the server, the local cache and the plaintext records the UI
// works with. Every method requires an active session.
type ClientExpenseService interface {
	GetByDate(ctx context.Context, session *Session, date models.Date) ([]models.ExpenseRecord, error)
	SaveForDate(ctx context.Context, session *Session, date models.Date, records []models.ExpenseRecord) ([]models.ExpenseRecord, error)

	// GetAll returns every record the user owns. When the server cannot be
	// reached the locally cached ciphertext rows are decoded instead.
	GetAll(ctx context.Context, session *Session) ([]models.ExpenseRecord, error)
	GetByRange(ctx context.Context, session *Session, rng models.DateRange) ([]models.ExpenseRecord, error)

	Update(ctx context.Context, session *Session, record models.ExpenseRecord) (models.ExpenseRecord, error)
	Delete(ctx context.Context, session *Session, id int64) error

	// RefreshCache replaces the local ciphertext cache with a fresh server
	// snapshot. Used by the background refresh job.
	RefreshCache(ctx context.Context, session *Session) error
}

// ClientAnalyticsService aggregates decrypted records locally. Placeholder
// records produced by failed decryption are skipped so they cannot skew the
// figures.
type ClientAnalyticsService interface {
	CategoryTotals(records []models.ExpenseRecord) []models.CategoryTotal
	MonthlyTotals(records []models.ExpenseRecord) []models.MonthlyTotal
	Total(records []models.ExpenseRecord) float64
}

// ClientRefreshJob is a background worker that periodically refreshes the
// local expense cache for the active session.
type ClientRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, session *Session, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
