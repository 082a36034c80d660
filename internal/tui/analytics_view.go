// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/expense-keeper/internal/service"
	"github.com/MKhiriev/expense-keeper/models"
)

// renderAnalytics aggregates the currently loaded records locally and renders
// per-category and per-month totals. Records that failed to decrypt are
// excluded by the analytics service itself.
func renderAnalytics(svc service.ClientAnalyticsService, records []models.ExpenseRecord, scope string) string {
	var b strings.Builder

	categories := svc.CategoryTotals(records)
	months := svc.MonthlyTotals(records)
	total := svc.Total(records)

	b.WriteString("[ BY CATEGORY ]\n")
	if len(categories) == 0 {
		b.WriteString("(no data)\n")
	} else {
		b.WriteString("Category             │ Count │ Total        │ Share\n")
		b.WriteString("─────────────────────┼───────┼──────────────┼───────\n")
		for _, c := range categories {
			share := 0.0
			if total > 0 {
				share = c.Total / total * 100
			}
			b.WriteString(fmt.Sprintf("%-20s │ %5d │ %12s │ %5.1f%%\n",
				fitText(c.Category, 20), c.Count, formatAmount(c.Total), share))
		}
	}

	b.WriteString("\n[ BY MONTH ]\n")
	if len(months) == 0 {
		b.WriteString("(no data)\n")
	} else {
		b.WriteString("Month   │ Total\n")
		b.WriteString("────────┼─────────────\n")
		for _, mt := range months {
			b.WriteString(fmt.Sprintf("%-7s │ %12s\n", mt.Month, formatAmount(mt.Total)))
		}
	}

	b.WriteString("\nGrand total: ")
	b.WriteString(formatAmount(total))

	title := "ANALYTICS"
	if scope != "" {
		title += ": " + scope
	}
	return renderPage(title, b.String(), "esc: back")
}
