// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/expense-keeper/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`
)

// expenseColumns is the canonical column order used by every expense query;
// scanExpenseRow relies on it.
var expenseColumns = []string{"id", "user_id", "expense_date", "amount", "category", "notes"}

// psql builds parameterised PostgreSQL queries with $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func buildSelectExpensesByDate(userID int64, date models.Date) (string, []any, error) {
	return psql.Select(expenseColumns...).
		From(models.Expense{}.TableName()).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"expense_date": date}).
		OrderBy("id").
		ToSql()
}

// The full listing is what the UI shows first, so it comes back newest first.
func buildSelectAllExpenses(userID int64) (string, []any, error) {
	return psql.Select(expenseColumns...).
		From(models.Expense{}.TableName()).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("expense_date DESC", "id DESC").
		ToSql()
}

func buildSelectExpensesByRange(userID int64, rng models.DateRange) (string, []any, error) {
	return psql.Select(expenseColumns...).
		From(models.Expense{}.TableName()).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"expense_date": rng.StartDate}).
		Where(squirrel.LtOrEq{"expense_date": rng.EndDate}).
		OrderBy("expense_date", "id").
		ToSql()
}

func buildInsertExpense(expense models.Expense) (string, []any, error) {
	return psql.Insert(models.Expense{}.TableName()).
		Columns("user_id", "expense_date", "amount", "category", "notes").
		Values(expense.UserID, expense.Date, expense.Amount, expense.Category, expense.Notes).
		Suffix("RETURNING id, user_id, expense_date, amount, category, notes").
		ToSql()
}

func buildDeleteExpensesForDate(userID int64, date models.Date) (string, []any, error) {
	return psql.Delete(models.Expense{}.TableName()).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"expense_date": date}).
		ToSql()
}

func buildUpdateExpenseByID(expense models.Expense) (string, []any, error) {
	return psql.Update(models.Expense{}.TableName()).
		Set("expense_date", expense.Date).
		Set("amount", expense.Amount).
		Set("category", expense.Category).
		Set("notes", expense.Notes).
		Where(squirrel.Eq{"id": expense.ID}).
		Where(squirrel.Eq{"user_id": expense.UserID}).
		ToSql()
}

func buildDeleteExpenseByID(userID int64, id int64) (string, []any, error) {
	return psql.Delete(models.Expense{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
}
