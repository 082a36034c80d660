package tui

import (
	"github.com/MKhiriev/expense-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to switch the active page. Payload, when set,
// is re-delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes an async login attempt. On success Session is the
// freshly opened client session; on failure Err carries the reason.
type LoginResult struct {
	Session *service.Session
	Err     error
}

// RegisterSuccessNotice is shown on the menu page after registration.
type RegisterSuccessNotice struct {
	Username string
}
