// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/expense-keeper/internal/crypto"
	"github.com/MKhiriev/expense-keeper/models"
)

// PlaceholderText substitutes category and notes in records whose ciphertext
// could not be decrypted. The UI shows it verbatim.
const PlaceholderText = "[ENCRYPTED]"

type clientCodecService struct {
	keys crypto.KeyService
}

// NewClientCodecService constructs the codec over the given key service.
func NewClientCodecService(keys crypto.KeyService) ClientCodecService {
	return &clientCodecService{keys: keys}
}

// EncodeExpense implements ClientCodecService. Each field is encrypted
// independently, so the server can store and return them as opaque strings.
func (c *clientCodecService) EncodeExpense(record models.ExpenseRecord, key []byte) (models.Expense, error) {
	amount, err := c.keys.EncryptField(formatAmount(record.Amount), key)
	if err != nil {
		return models.Expense{}, fmt.Errorf("encrypt amount: %w", err)
	}
	category, err := c.keys.EncryptField(record.Category, key)
	if err != nil {
		return models.Expense{}, fmt.Errorf("encrypt category: %w", err)
	}
	notes, err := c.keys.EncryptField(record.Notes, key)
	if err != nil {
		return models.Expense{}, fmt.Errorf("encrypt notes: %w", err)
	}

	return models.Expense{
		ID:       record.ID,
		Date:     record.Date,
		Amount:   amount,
		Category: category,
		Notes:    notes,
	}, nil
}

// DecodeExpense implements ClientCodecService. Decryption failure of any
// field, or an amount that does not parse back into a number, degrades the
// whole record to the placeholder form. It never returns an error: a list
// decode must survive individually corrupt rows.
func (c *clientCodecService) DecodeExpense(expense models.Expense, key []byte) models.ExpenseRecord {
	record := models.ExpenseRecord{
		ID:   expense.ID,
		Date: expense.Date,
	}

	amountText, err := c.keys.DecryptField(expense.Amount, key)
	if err != nil {
		return placeholderRecord(record)
	}
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		return placeholderRecord(record)
	}
	category, err := c.keys.DecryptField(expense.Category, key)
	if err != nil {
		return placeholderRecord(record)
	}
	notes, err := c.keys.DecryptField(expense.Notes, key)
	if err != nil {
		return placeholderRecord(record)
	}

	record.Amount = amount
	record.Category = category
	record.Notes = notes
	return record
}

// formatAmount renders the amount as its shortest exact decimal form, so the
// same value always encrypts from the same plaintext.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func placeholderRecord(record models.ExpenseRecord) models.ExpenseRecord {
	record.Amount = 0
	record.Category = PlaceholderText
	record.Notes = PlaceholderText
	return record
}
