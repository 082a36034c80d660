package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/expense-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type expenseFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	recordID   int64
	submitting bool
}

func newExpenseFormModel(record *models.ExpenseRecord, defaultDate models.Date) expenseFormModel {
	inputs := make([]textinput.Model, 4)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = models.DateLayout
	inputs[0].CharLimit = len(models.DateLayout)
	inputs[0].Width = 40
	inputs[0].Focus()

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "0.00"
	inputs[1].Width = 40

	inputs[2] = textinput.New()
	inputs[2].Placeholder = "category"
	inputs[2].CharLimit = 64
	inputs[2].Width = 40

	inputs[3] = textinput.New()
	inputs[3].Placeholder = "notes"
	inputs[3].CharLimit = 256
	inputs[3].Width = 40

	m := expenseFormModel{inputs: inputs}
	if record == nil {
		if !defaultDate.IsZero() {
			m.inputs[0].SetValue(defaultDate.String())
		}
		return m
	}

	m.editing = true
	m.recordID = record.ID
	m.inputs[0].SetValue(record.Date.String())
	m.inputs[1].SetValue(strconv.FormatFloat(record.Amount, 'f', -1, 64))
	m.inputs[2].SetValue(record.Category)
	m.inputs[3].SetValue(record.Notes)
	return m
}

// toRecord validates the form fields and assembles the plaintext record.
// It returns a human-readable problem description instead of an error type
// because the caller renders it directly.
func (m expenseFormModel) toRecord() (models.ExpenseRecord, string) {
	date, err := models.ParseDate(strings.TrimSpace(m.inputs[0].Value()))
	if err != nil {
		return models.ExpenseRecord{}, "Date must be in " + models.DateLayout + " form"
	}

	rawAmount := strings.TrimSpace(m.inputs[1].Value())
	if rawAmount == "" {
		return models.ExpenseRecord{}, "Amount is required"
	}
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil || amount < 0 {
		return models.ExpenseRecord{}, "Amount must be a non-negative number"
	}

	category := strings.TrimSpace(m.inputs[2].Value())
	if category == "" {
		return models.ExpenseRecord{}, "Category is required"
	}

	return models.ExpenseRecord{
		ID:       m.recordID,
		Date:     date,
		Amount:   amount,
		Category: category,
		Notes:    strings.TrimSpace(m.inputs[3].Value()),
	}, ""
}

func (m expenseFormModel) View(errMsg string) string {
	title := "NEW EXPENSE"
	if m.editing {
		title = "EDIT EXPENSE"
	}

	out := "Field    │ Value\n"
	out += "─────────┼──────────────────────────────────────────\n"
	out += "Date     │ [" + m.inputs[0].View() + "]\n"
	out += "Amount   │ [" + m.inputs[1].View() + "]\n"
	out += "Category │ [" + m.inputs[2].View() + "]\n"
	out += "Notes    │ [" + m.inputs[3].View() + "]\n"
	if m.submitting {
		out += "\n[Saving...]\n"
	} else {
		out += "\n[Save]\n"
	}
	if errMsg != "" {
		out += "\nError: " + errMsg + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "esc: cancel │ tab: next field │ enter: save")
}

func (m *expenseFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *expenseFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
