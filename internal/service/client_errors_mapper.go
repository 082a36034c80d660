// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/expense-keeper/internal/adapter"
	"github.com/MKhiriev/expense-keeper/internal/app"
	"github.com/MKhiriev/expense-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgPasswordTooShort:
			return ErrPasswordTooShort
		case app.MsgUsernameTooShort:
			return ErrUsernameTooShort
		case app.MsgInvalidDate:
			return ErrInvalidDataProvided
		case app.MsgInvalidDateRange:
			return ErrInvalidDateRange
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidUsernamePassword:
			return ErrInvalidCredentials
		case app.MsgAuthenticationRequired, app.MsgInvalidAuthCredential:
			return ErrNoActiveSession
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgUsernameAlreadyExists {
			return store.ErrUsernameAlreadyExists
		}

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
