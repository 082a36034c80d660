// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/expense-keeper/internal/adapter"
	"github.com/MKhiriev/expense-keeper/internal/logger"
	"github.com/MKhiriev/expense-keeper/internal/store"
	"github.com/MKhiriev/expense-keeper/models"
)

type clientExpenseService struct {
	adapter adapter.ServerAdapter
	codec   ClientCodecService
	cache   store.ExpenseCacheRepository
}

func NewClientExpenseService(serverAdapter adapter.ServerAdapter, codec ClientCodecService, cache store.ExpenseCacheRepository) ClientExpenseService {
	return &clientExpenseService{
		adapter: serverAdapter,
		codec:   codec,
		cache:   cache,
	}
}

func (s *clientExpenseService) GetByDate(ctx context.Context, session *Session, date models.Date) ([]models.ExpenseRecord, error) {
	if !session.Active() {
		return nil, ErrNoActiveSession
	}

	expenses, err := s.adapter.GetExpensesByDate(ctx, date)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return s.decodeAll(expenses, session), nil
}

// SaveForDate encodes the day's records and uploads them, replacing the
// server's set for that date. The rows stored by the server come back decoded
// so the UI sees the server-assigned ids immediately.
func (s *clientExpenseService) SaveForDate(ctx context.Context, session *Session, date models.Date, records []models.ExpenseRecord) ([]models.ExpenseRecord, error) {
	if !session.Active() {
		return nil, ErrNoActiveSession
	}

	expenses := make([]models.Expense, 0, len(records))
	for _, record := range records {
		record.Date = date
		expense, err := s.codec.EncodeExpense(record, session.Key())
		if err != nil {
			return nil, fmt.Errorf("encoding expense failed: %w", err)
		}
		expenses = append(expenses, expense)
	}

	saved, err := s.adapter.SaveExpensesForDate(ctx, date, expenses)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return s.decodeAll(saved, session), nil
}

// GetAll fetches every row from the server and refreshes the local cache on
// the way through. If the server is unreachable the cached ciphertext rows
// are decoded instead, so the list keeps working offline.
func (s *clientExpenseService) GetAll(ctx context.Context, session *Session) ([]models.ExpenseRecord, error) {
	if !session.Active() {
		return nil, ErrNoActiveSession
	}

	expenses, err := s.adapter.GetAllExpenses(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Int64("user_id", session.UserID).
			Msg("server unreachable, falling back to local cache")

		cached, cacheErr := s.cache.GetAll(ctx, session.UserID)
		if cacheErr != nil {
			return nil, mapAdapterError(err)
		}
		return s.decodeAll(cached, session), nil
	}

	if cacheErr := s.cache.ReplaceAll(ctx, session.UserID, expenses); cacheErr != nil {
		logger.FromContext(ctx).Warn().
			Err(cacheErr).
			Int64("user_id", session.UserID).
			Msg("failed to refresh local expense cache")
	}

	return s.decodeAll(expenses, session), nil
}

func (s *clientExpenseService) GetByRange(ctx context.Context, session *Session, rng models.DateRange) ([]models.ExpenseRecord, error) {
	if !session.Active() {
		return nil, ErrNoActiveSession
	}

	expenses, err := s.adapter.GetExpensesByRange(ctx, rng)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return s.decodeAll(expenses, session), nil
}

func (s *clientExpenseService) Update(ctx context.Context, session *Session, record models.ExpenseRecord) (models.ExpenseRecord, error) {
	if !session.Active() {
		return models.ExpenseRecord{}, ErrNoActiveSession
	}
	if record.ID <= 0 {
		return models.ExpenseRecord{}, ErrInvalidDataProvided
	}

	expense, err := s.codec.EncodeExpense(record, session.Key())
	if err != nil {
		return models.ExpenseRecord{}, fmt.Errorf("encoding expense failed: %w", err)
	}

	updated, err := s.adapter.UpdateExpense(ctx, expense)
	if err != nil {
		return models.ExpenseRecord{}, mapAdapterError(err)
	}

	return s.codec.DecodeExpense(updated, session.Key()), nil
}

func (s *clientExpenseService) Delete(ctx context.Context, session *Session, id int64) error {
	if !session.Active() {
		return ErrNoActiveSession
	}
	if id <= 0 {
		return ErrInvalidDataProvided
	}

	if err := s.adapter.DeleteExpense(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

// RefreshCache pulls a full server snapshot into the local ciphertext cache.
func (s *clientExpenseService) RefreshCache(ctx context.Context, session *Session) error {
	if !session.Active() {
		return ErrNoActiveSession
	}

	expenses, err := s.adapter.GetAllExpenses(ctx)
	if err != nil {
		return mapAdapterError(err)
	}

	if err := s.cache.ReplaceAll(ctx, session.UserID, expenses); err != nil {
		return fmt.Errorf("refreshing expense cache failed: %w", err)
	}

	return nil
}

func (s *clientExpenseService) decodeAll(expenses []models.Expense, session *Session) []models.ExpenseRecord {
	records := make([]models.ExpenseRecord, 0, len(expenses))
	for _, expense := range expenses {
		records = append(records, s.codec.DecodeExpense(expense, session.Key()))
	}
	return records
}
