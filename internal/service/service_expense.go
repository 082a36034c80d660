// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/expense-keeper/internal/logger"
	"github.com/MKhiriev/expense-keeper/internal/store"
	"github.com/MKhiriev/expense-keeper/internal/validators"
	"github.com/MKhiriev/expense-keeper/models"
)

// expenseService is the concrete implementation of ExpenseService. Amount,
// category and notes pass through it as opaque ciphertext; the only fields it
// reasons about are the plaintext date and the identifiers.
type expenseService struct {
	expenseRepository store.ExpenseRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewExpenseService constructs an ExpenseService wired to the given
// repository.
func NewExpenseService(expenseRepository store.ExpenseRepository, logger *logger.Logger) ExpenseService {
	return &expenseService{
		expenseRepository: expenseRepository,
		validator:         validators.NewExpenseValidator(),
		logger:            logger,
	}
}

func (s *expenseService) GetByDate(ctx context.Context, userID int64, date models.Date) ([]models.Expense, error) {
	expenses, err := s.expenseRepository.ListByDate(ctx, userID, date)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing expenses by date failed")
		return nil, fmt.Errorf("listing expenses by date failed: %w", err)
	}

	return expenses, nil
}

// ReplaceForDate swaps the user's expense set for one day. Ownership of every
// uploaded row is forced to the authenticated user before it reaches storage,
// regardless of what the payload claimed.
func (s *expenseService) ReplaceForDate(ctx context.Context, userID int64, date models.Date, expenses []models.Expense) ([]models.Expense, error) {
	for i := range expenses {
		expenses[i].UserID = userID
		expenses[i].Date = date
	}

	if err := s.validator.Validate(ctx, expenses); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("user_id", userID).Msg("rejecting replace-for-date upload")
		return nil, fmt.Errorf("%w: %s", ErrInvalidDataProvided, err)
	}

	saved, err := s.expenseRepository.ReplaceForDate(ctx, userID, date, expenses)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("replacing expenses for date failed")
		return nil, fmt.Errorf("replacing expenses for date failed: %w", err)
	}

	return saved, nil
}

func (s *expenseService) GetAll(ctx context.Context, userID int64) ([]models.Expense, error) {
	expenses, err := s.expenseRepository.ListAll(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing all expenses failed")
		return nil, fmt.Errorf("listing all expenses failed: %w", err)
	}

	return expenses, nil
}

func (s *expenseService) GetByRange(ctx context.Context, userID int64, rng models.DateRange) ([]models.Expense, error) {
	if err := s.validator.Validate(ctx, rng); err != nil {
		return nil, ErrInvalidDateRange
	}

	expenses, err := s.expenseRepository.ListByRange(ctx, userID, rng)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing expenses by range failed")
		return nil, fmt.Errorf("listing expenses by range failed: %w", err)
	}

	return expenses, nil
}

// Update modifies a single expense row. The row is matched by both id and the
// authenticated user's id; a row belonging to someone else looks exactly like
// a missing one, so the statement matches nothing and the call succeeds as a
// no-op instead of revealing that the id exists.
func (s *expenseService) Update(ctx context.Context, expense models.Expense) (models.Expense, error) {
	if err := s.validator.Validate(ctx, expense, validators.FieldID, validators.FieldUserID); err != nil {
		return models.Expense{}, ErrInvalidDataProvided
	}

	affected, err := s.expenseRepository.UpdateByID(ctx, expense)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", expense.UserID).
			Int64("id", expense.ID).
			Msg("updating expense failed")
		return models.Expense{}, fmt.Errorf("updating expense failed: %w", err)
	}
	if affected == 0 {
		logger.FromContext(ctx).Debug().
			Int64("user_id", expense.UserID).
			Int64("id", expense.ID).
			Msg("update matched no rows")
	}

	return expense, nil
}

// Delete removes a single expense row, matched by both id and the
// authenticated user's id. Like Update, it succeeds as a no-op when the
// scoped statement matches nothing.
func (s *expenseService) Delete(ctx context.Context, userID int64, id int64) error {
	target := models.Expense{ID: id, UserID: userID}
	if err := s.validator.Validate(ctx, target, validators.FieldID, validators.FieldUserID); err != nil {
		return ErrInvalidDataProvided
	}

	affected, err := s.expenseRepository.DeleteByID(ctx, userID, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("id", id).
			Msg("deleting expense failed")
		return fmt.Errorf("deleting expense failed: %w", err)
	}
	if affected == 0 {
		logger.FromContext(ctx).Debug().
			Int64("user_id", userID).
			Int64("id", id).
			Msg("delete matched no rows")
	}

	return nil
}
