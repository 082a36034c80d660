// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/expense-keeper/internal/logger"
	"github.com/MKhiriev/expense-keeper/models"
)

// expenseRepository is the PostgreSQL-backed implementation of
// [ExpenseRepository]. Every query it issues carries a user_id predicate
// alongside any other filter, so ownership is enforced at the SQL level and
// not left to callers.
type expenseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExpenseRepository constructs an [ExpenseRepository] backed by the
// provided database connection and logger.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	logger.Debug().Msg("creating expense repository")
	return &expenseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *expenseRepository) ListByDate(ctx context.Context, userID int64, date models.Date) ([]models.Expense, error) {
	query, args, err := buildSelectExpensesByDate(userID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryExpenses(ctx, "ListByDate", query, args)
}

func (r *expenseRepository) ListAll(ctx context.Context, userID int64) ([]models.Expense, error) {
	query, args, err := buildSelectAllExpenses(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryExpenses(ctx, "ListAll", query, args)
}

func (r *expenseRepository) ListByRange(ctx context.Context, userID int64, rng models.DateRange) ([]models.Expense, error) {
	query, args, err := buildSelectExpensesByRange(userID, rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryExpenses(ctx, "ListByRange", query, args)
}

// ReplaceForDate deletes the user's rows for the given day and inserts the
// replacement set in one transaction. Transient failures (connection loss,
// deadlock, serialization conflict) are retried once, as classified by the
// connection's [ErrorClassificator].
func (r *expenseRepository) ReplaceForDate(ctx context.Context, userID int64, date models.Date, expenses []models.Expense) ([]models.Expense, error) {
	saved, err := r.replaceForDateTx(ctx, userID, date, expenses)
	if err != nil && r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "*expenseRepository.ReplaceForDate").
			Int64("user_id", userID).
			Msg("retrying replace transaction after transient error")
		saved, err = r.replaceForDateTx(ctx, userID, date, expenses)
	}

	return saved, err
}

func (r *expenseRepository) replaceForDateTx(ctx context.Context, userID int64, date models.Date, expenses []models.Expense) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.ReplaceForDate").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	deleteQuery, deleteArgs, err := buildDeleteExpensesForDate(userID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "*expenseRepository.ReplaceForDate").
			Int64("user_id", userID).
			Str("date", date.String()).
			Msg("failed to delete previous expenses for date")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	saved := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		// the authenticated identity is the only source of truth for ownership
		expense.UserID = userID
		expense.Date = date

		insertQuery, insertArgs, err := buildInsertExpense(expense)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		row := tx.QueryRowContext(ctx, insertQuery, insertArgs...)
		if err := row.Scan(&expense.ID, &expense.UserID, &expense.Date, &expense.Amount, &expense.Category, &expense.Notes); err != nil {
			log.Err(err).
				Str("func", "*expenseRepository.ReplaceForDate").
				Int64("user_id", userID).
				Msg("failed to insert expense")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		saved = append(saved, expense)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*expenseRepository.ReplaceForDate").Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

func (r *expenseRepository) UpdateByID(ctx context.Context, expense models.Expense) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateExpenseByID(expense)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*expenseRepository.UpdateByID").
			Int64("user_id", expense.UserID).
			Int64("id", expense.ID).
			Msg("failed to update expense")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}

func (r *expenseRepository) DeleteByID(ctx context.Context, userID int64, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpenseByID(userID, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*expenseRepository.DeleteByID").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to delete expense")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}

// queryExpenses runs a prepared SELECT and scans the result set into expense
// models.
func (r *expenseRepository) queryExpenses(ctx context.Context, funcName string, query string, args []any) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*expenseRepository."+funcName).
			Msg("failed to execute expense query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.UserID, &expense.Date, &expense.Amount, &expense.Category, &expense.Notes); err != nil {
			log.Err(err).
				Str("func", "*expenseRepository."+funcName).
				Msg("failed to scan expense row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return expenses, nil
}
