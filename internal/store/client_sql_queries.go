// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveCachedExpense = `
		INSERT INTO expense_cache (
			id,
			user_id,
			expense_date,
			amount,
			category,
			notes
		) VALUES (?, ?, ?, ?, ?, ?);`

	getAllCachedExpenses = `
		SELECT
			id,
			user_id,
			expense_date,
			amount,
			category,
			notes
		FROM expense_cache
		WHERE user_id = ?
		ORDER BY expense_date DESC, id DESC;`

	deleteAllCachedExpenses = `
		DELETE FROM expense_cache
		WHERE user_id = ?;`
)
