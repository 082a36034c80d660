package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/expense-keeper/internal/logger"
	"github.com/MKhiriev/expense-keeper/models"
)

type expenseCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewExpenseCacheRepository(db *DB, logger *logger.Logger) ExpenseCacheRepository {
	return &expenseCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *expenseCacheRepository) ReplaceAll(ctx context.Context, userID int64, expenses []models.Expense) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "expenseCacheRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to begin cache transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteAllCachedExpenses, userID); err != nil {
		log.Err(err).
			Str("func", "expenseCacheRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to clear cached expenses")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, item := range expenses {
		_, err := tx.ExecContext(ctx, saveCachedExpense,
			item.ID,
			userID,
			item.Date,
			item.Amount,
			item.Category,
			item.Notes,
		)
		if err != nil {
			log.Err(err).
				Str("func", "expenseCacheRepository.ReplaceAll").
				Int64("user_id", userID).
				Int64("id", item.ID).
				Msg("failed to cache expense row")
			return fmt.Errorf("failed to cache expense (id=%d): %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "expenseCacheRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to commit cache transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *expenseCacheRepository) GetAll(ctx context.Context, userID int64) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllCachedExpenses, userID)
	if err != nil {
		log.Err(err).
			Str("func", "expenseCacheRepository.GetAll").
			Int64("user_id", userID).
			Msg("failed to query cached expenses")
		return nil, fmt.Errorf("failed to query cached expenses: %w", err)
	}
	defer rows.Close()

	var items []models.Expense
	for rows.Next() {
		var item models.Expense
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Date,
			&item.Amount,
			&item.Category,
			&item.Notes,
		); err != nil {
			log.Err(err).
				Str("func", "expenseCacheRepository.GetAll").
				Int64("user_id", userID).
				Msg("failed to scan cached expense row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
