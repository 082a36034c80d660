package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/expense-keeper/internal/logger"
	"github.com/MKhiriev/expense-keeper/models"
)

func newTestCacheRepo(t *testing.T) (ExpenseCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := NewExpenseCacheRepository(&DB{DB: db, logger: l}, l)
	return repo, mock, db
}

func TestCacheReplaceAll_SwapsSnapshot(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	ctx := context.Background()
	date := models.NewDate(2026, time.March, 15)
	snapshot := []models.Expense{
		{ID: 10, Date: date, Amount: "enc-a", Category: "enc-c", Notes: "enc-n"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM expense_cache").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO expense_cache").
		WithArgs(int64(10), int64(42), date.Time, "enc-a", "enc-c", "enc-n").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.ReplaceAll(ctx, 42, snapshot); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCacheReplaceAll_RollsBackOnInsertError(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM expense_cache").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO expense_cache").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(ctx, 42, []models.Expense{{ID: 1}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCacheGetAll_ScopedToUser(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "user_id", "expense_date", "amount", "category", "notes"}).
		AddRow(10, 42, "2026-03-15", "enc-a", "enc-c", "enc-n")

	mock.ExpectQuery("SELECT (.+) FROM expense_cache").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	items, err := repo.GetAll(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 cached row, got %d", len(items))
	}
	if items[0].Date.String() != "2026-03-15" {
		t.Errorf("expected date to parse from text column, got %s", items[0].Date)
	}
	if items[0].Amount != "enc-a" {
		t.Errorf("ciphertext must round-trip untouched, got %q", items[0].Amount)
	}
}
