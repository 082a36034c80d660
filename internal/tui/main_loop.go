// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/expense-keeper/internal/service"
	"github.com/MKhiriev/expense-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  *service.Session

	items      []models.ExpenseRecord
	idx        int
	loading    bool
	refreshing bool
	status     string
	errMsg     string

	detail bool

	forming bool
	form    expenseFormModel
	formErr string

	filtering    bool
	filterInputs []textinput.Model
	filterFocus  int
	filterErr    string
	filterFrom   models.Date
	filterTo     models.Date

	analytics bool

	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64

	logout bool
}

type listLoadedMsg struct {
	items []models.ExpenseRecord
	err   error
}

type refreshDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type saveDoneMsg struct {
	err error
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session *service.Session) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		session:  session,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadItems()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case refreshDoneMsg:
		m.refreshing = false
		if msg.err != nil {
			m.errMsg = refreshErrorMessage(msg.err)
			return m, nil
		}
		m.status = "Refresh complete"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Expense deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	case saveDoneMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.formErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.forming = false
		m.formErr = ""
		m.status = "Expense saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.forming {
			return m.updateForm(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showConfirm {
		switch keyMsg.String() {
		case "y":
			m.showConfirm = false
			if m.pendingDelete <= 0 {
				return m, nil
			}
			return m, m.cmdDelete(m.pendingDelete)
		case "n", "esc":
			m.showConfirm = false
			m.pendingDelete = 0
		}
		return m, nil
	}

	if m.forming {
		return m.updateForm(msg)
	}

	if m.filtering {
		return m.updateFilter(msg)
	}

	if m.analytics {
		if keyMsg.String() == "esc" {
			m.analytics = false
		}
		return m, nil
	}

	if m.detail {
		record, ok := m.current()
		if !ok {
			m.detail = false
			return m, nil
		}

		switch keyMsg.String() {
		case "esc":
			m.detail = false
		case "e":
			m.detail = false
			m.startEdit(record)
			return m, nil
		case "d":
			m.detail = false
			m.askDelete(record)
			return m, nil
		case "c":
			return m, m.copyToClipboard(record.Notes)
		case "u":
			return m, m.copyToClipboard(formatAmount(record.Amount))
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "No expenses"
			return m, nil
		}
		m.detail = true
	case "n":
		m.startAdd()
		return m, nil
	case "e":
		record, ok := m.current()
		if !ok {
			m.status = "No expenses"
			return m, nil
		}
		m.startEdit(record)
		return m, nil
	case "d":
		record, ok := m.current()
		if !ok {
			m.status = "No expenses"
			return m, nil
		}
		m.askDelete(record)
		return m, nil
	case "s":
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.status = "Refreshing..."
		m.errMsg = ""
		return m, m.cmdRefresh()
	case "f":
		m.startFilter()
		return m, nil
	case "a":
		m.analytics = true
		return m, nil
	case "esc":
		if !m.filterFrom.IsZero() {
			m.filterFrom = models.Date{}
			m.filterTo = models.Date{}
			m.status = "Filter cleared"
			m.loading = true
			return m, m.cmdLoadItems()
		}
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.forming = false
			m.formErr = ""
			return m, nil
		case "tab":
			m.form.focusNext()
			return m, nil
		case "shift+tab":
			m.form.focusPrev()
			return m, nil
		case "enter":
			if m.form.submitting {
				return m, nil
			}

			record, problem := m.form.toRecord()
			if problem != "" {
				m.formErr = problem
				return m, nil
			}

			m.formErr = ""
			m.form.submitting = true
			if m.form.editing {
				return m, m.cmdUpdate(record)
			}
			return m, m.cmdCreate(record)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.filtering = false
			m.filterErr = ""
			return m, nil
		case "tab", "shift+tab":
			m.filterInputs[m.filterFocus].Blur()
			m.filterFocus = (m.filterFocus + 1) % len(m.filterInputs)
			m.filterInputs[m.filterFocus].Focus()
			return m, nil
		case "enter":
			rawFrom := strings.TrimSpace(m.filterInputs[0].Value())
			rawTo := strings.TrimSpace(m.filterInputs[1].Value())
			if rawFrom == "" {
				m.filterErr = "Start date is required"
				return m, nil
			}

			from, err := models.ParseDate(rawFrom)
			if err != nil {
				m.filterErr = "Start date must be in " + models.DateLayout + " form"
				return m, nil
			}

			var to models.Date
			if rawTo != "" {
				to, err = models.ParseDate(rawTo)
				if err != nil {
					m.filterErr = "End date must be in " + models.DateLayout + " form"
					return m, nil
				}
				if to.Before(from.Time) {
					m.filterErr = "End date is before start date"
					return m, nil
				}
			}

			m.filtering = false
			m.filterErr = ""
			m.filterFrom = from
			m.filterTo = to
			m.loading = true
			return m, m.cmdLoadItems()
		}
	}

	var cmd tea.Cmd
	m.filterInputs[m.filterFocus], cmd = m.filterInputs[m.filterFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) View() string {
	if m.forming {
		return m.form.View(m.formErr)
	}

	if m.filtering {
		out := "Field │ Value\n"
		out += "──────┼──────────────────────────────────────────\n"
		out += "From  │ [" + m.filterInputs[0].View() + "]\n"
		out += "To    │ [" + m.filterInputs[1].View() + "]\n"
		out += "\nLeave \"To\" empty to show a single day.\n"
		if m.filterErr != "" {
			out += "\nError: " + m.filterErr + "\n"
		}
		return renderPage("FILTER BY DATE", strings.TrimRight(out, "\n"), "esc: cancel │ tab: next field │ enter: apply")
	}

	if m.analytics {
		return renderAnalytics(m.services.AnalyticsService, m.items, m.filterLabel())
	}

	if m.detail {
		record, ok := m.current()
		if !ok {
			return renderPage("EXPENSE", "Expense not found", "esc: back")
		}
		return m.viewDetail(record)
	}

	out := ""

	if m.loading {
		out += "Loading expenses...\n"
		return renderPage(m.listTitle(), strings.TrimRight(out, "\n"), m.listHotKeys())
	}

	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}

	if len(m.items) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No expenses\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "     │ Date       │ Amount       │ Category         │ Notes\n"
		out += "─────┼────────────┼──────────────┼──────────────────┼──────────────────\n"
		var total float64
		for i, record := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %s │ %12s │ %-16s │ %s\n",
				cursor,
				i+1,
				record.Date.String(),
				formatAmount(record.Amount),
				fitText(record.Category, 16),
				fitText(valueOrDash(record.Notes), 18),
			)
			total += record.Amount
		}
		out += fmt.Sprintf("\nTotal: %s", formatAmount(total))
	}

	body := renderPage(m.listTitle(), strings.TrimRight(out, "\n"), m.listHotKeys())
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	return body
}

func (m mainLoopModel) listTitle() string {
	if label := m.filterLabel(); label != "" {
		return "EXPENSES: " + label
	}
	return "EXPENSES"
}

func (m mainLoopModel) filterLabel() string {
	switch {
	case m.filterFrom.IsZero():
		return ""
	case m.filterTo.IsZero():
		return m.filterFrom.String()
	default:
		return m.filterFrom.String() + " … " + m.filterTo.String()
	}
}

func (m mainLoopModel) listHotKeys() string {
	return "n: new │ e: edit │ d: delete │ f: filter │ a: analytics │ s: refresh │ l: logout │ q: quit"
}

func (m mainLoopModel) viewDetail(record models.ExpenseRecord) string {
	var b strings.Builder

	b.WriteString("Date     : " + record.Date.String() + "\n")
	b.WriteString("Amount   : " + formatAmount(record.Amount) + "\n")
	b.WriteString("Category : " + record.Category + "\n")
	b.WriteString("Notes    : " + valueOrDash(record.Notes) + "\n")

	if record.Category == service.PlaceholderText {
		b.WriteString("\nThis row could not be decrypted with the current key.\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	title := fmt.Sprintf("EXPENSE #%d", record.ID)
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "e: edit │ d: delete │ c: copy notes │ u: copy amount │ esc: back")
}

func (m mainLoopModel) current() (models.ExpenseRecord, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.ExpenseRecord{}, false
	}
	return m.items[m.idx], true
}

func (m *mainLoopModel) startAdd() {
	defaultDate := m.filterFrom
	m.form = newExpenseFormModel(nil, defaultDate)
	m.formErr = ""
	m.forming = true
}

func (m *mainLoopModel) startEdit(record models.ExpenseRecord) {
	if record.Category == service.PlaceholderText {
		m.status = "Cannot edit a row that failed to decrypt"
		return
	}

	m.form = newExpenseFormModel(&record, models.Date{})
	m.formErr = ""
	m.forming = true
}

func (m *mainLoopModel) askDelete(record models.ExpenseRecord) {
	m.pendingDelete = record.ID
	m.confirm = confirmModel{message: fmt.Sprintf("%s %s (%s)", record.Date, formatAmount(record.Amount), record.Category)}
	m.showConfirm = true
}

func (m *mainLoopModel) copyToClipboard(text string) tea.Cmd {
	if err := clipboard.WriteAll(text); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return nil
	}
	m.status = "Copied"
	return nil
}

func (m *mainLoopModel) startFilter() {
	from := textinput.New()
	from.Placeholder = models.DateLayout
	from.CharLimit = len(models.DateLayout)
	from.Width = 40
	from.Focus()
	if !m.filterFrom.IsZero() {
		from.SetValue(m.filterFrom.String())
	}

	to := textinput.New()
	to.Placeholder = models.DateLayout
	to.CharLimit = len(models.DateLayout)
	to.Width = 40
	if !m.filterTo.IsZero() {
		to.SetValue(m.filterTo.String())
	}

	m.filterInputs = []textinput.Model{from, to}
	m.filterFocus = 0
	m.filterErr = ""
	m.filtering = true
}

func (m mainLoopModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ExpenseService
	session := m.session
	from, to := m.filterFrom, m.filterTo

	return func() tea.Msg {
		switch {
		case from.IsZero():
			items, err := svc.GetAll(ctx, session)
			return listLoadedMsg{items: items, err: err}
		case to.IsZero():
			items, err := svc.GetByDate(ctx, session, from)
			return listLoadedMsg{items: items, err: err}
		default:
			items, err := svc.GetByRange(ctx, session, models.DateRange{StartDate: from, EndDate: to})
			return listLoadedMsg{items: items, err: err}
		}
	}
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ExpenseService
	session := m.session

	return func() tea.Msg {
		return refreshDoneMsg{err: svc.RefreshCache(ctx, session)}
	}
}

func (m mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ExpenseService
	session := m.session

	return func() tea.Msg {
		return deleteDoneMsg{err: svc.Delete(ctx, session, id)}
	}
}

func (m mainLoopModel) cmdUpdate(record models.ExpenseRecord) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ExpenseService
	session := m.session

	return func() tea.Msg {
		_, err := svc.Update(ctx, session, record)
		return saveDoneMsg{err: err}
	}
}

// cmdCreate appends the new record to whatever the server currently holds for
// that day and re-uploads the whole day, because the wire protocol works in
// per-day snapshots rather than single inserts.
func (m mainLoopModel) cmdCreate(record models.ExpenseRecord) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ExpenseService
	session := m.session

	return func() tea.Msg {
		existing, err := svc.GetByDate(ctx, session, record.Date)
		if err != nil {
			return saveDoneMsg{err: err}
		}

		for _, r := range existing {
			if r.Category == service.PlaceholderText {
				return saveDoneMsg{err: fmt.Errorf("day %s holds rows that cannot be decrypted; refusing to overwrite them", record.Date)}
			}
		}

		_, err = svc.SaveForDate(ctx, session, record.Date, append(existing, record))
		return saveDoneMsg{err: err}
	}
}

func refreshErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Refresh skipped. No network or the server is unavailable"
	}

	return fmt.Sprintf("Refresh failed: %v", err)
}
