package service

import (
	"sort"

	"github.com/MKhiriev/expense-keeper/models"
)

type clientAnalyticsService struct{}

// NewClientAnalyticsService constructs the local aggregation service.
// Aggregation happens strictly on the client: the server only ever holds
// ciphertext, so there is nothing meaningful it could sum.
func NewClientAnalyticsService() ClientAnalyticsService {
	return &clientAnalyticsService{}
}

// CategoryTotals implements ClientAnalyticsService. Results are sorted by
// total, largest first; ties break alphabetically so the output is stable.
func (a *clientAnalyticsService) CategoryTotals(records []models.ExpenseRecord) []models.CategoryTotal {
	totals := make(map[string]*models.CategoryTotal)
	for _, record := range records {
		if record.Category == PlaceholderText {
			continue
		}
		entry, ok := totals[record.Category]
		if !ok {
			entry = &models.CategoryTotal{Category: record.Category}
			totals[record.Category] = entry
		}
		entry.Total += record.Amount
		entry.Count++
	}

	result := make([]models.CategoryTotal, 0, len(totals))
	for _, entry := range totals {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Category < result[j].Category
	})

	return result
}

// MonthlyTotals implements ClientAnalyticsService. Months are keyed as
// "2006-01" and returned in chronological order.
func (a *clientAnalyticsService) MonthlyTotals(records []models.ExpenseRecord) []models.MonthlyTotal {
	totals := make(map[string]float64)
	for _, record := range records {
		if record.Category == PlaceholderText {
			continue
		}
		totals[record.Date.Format("2006-01")] += record.Amount
	}

	result := make([]models.MonthlyTotal, 0, len(totals))
	for month, total := range totals {
		result = append(result, models.MonthlyTotal{Month: month, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})

	return result
}

// Total implements ClientAnalyticsService.
func (a *clientAnalyticsService) Total(records []models.ExpenseRecord) float64 {
	var total float64
	for _, record := range records {
		if record.Category == PlaceholderText {
			continue
		}
		total += record.Amount
	}
	return total
}
