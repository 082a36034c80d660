// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/expense-keeper/internal/adapter"
	"github.com/MKhiriev/expense-keeper/internal/app"
	"github.com/MKhiriev/expense-keeper/internal/store"
	"github.com/stretchr/testify/assert"
)

func wireErr(sentinel error, body string) error {
	return fmt.Errorf("%w: %s", sentinel, body)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"bad request invalid data", wireErr(adapter.ErrBadRequest, app.MsgInvalidDataProvided), ErrInvalidDataProvided},
		{"bad request invalid date", wireErr(adapter.ErrBadRequest, app.MsgInvalidDate), ErrInvalidDataProvided},
		{"bad request invalid range", wireErr(adapter.ErrBadRequest, app.MsgInvalidDateRange), ErrInvalidDateRange},
		{"bad request short password", wireErr(adapter.ErrBadRequest, app.MsgPasswordTooShort), ErrPasswordTooShort},
		{"unauthorized wrong credentials", wireErr(adapter.ErrUnauthorized, app.MsgInvalidUsernamePassword), ErrInvalidCredentials},
		{"unauthorized missing header", wireErr(adapter.ErrUnauthorized, app.MsgAuthenticationRequired), ErrNoActiveSession},
		{"unauthorized bad header", wireErr(adapter.ErrUnauthorized, app.MsgInvalidAuthCredential), ErrNoActiveSession},
		{"bad request short username", wireErr(adapter.ErrBadRequest, app.MsgUsernameTooShort), ErrUsernameTooShort},
		{"conflict username taken", wireErr(adapter.ErrConflict, app.MsgUsernameAlreadyExists), store.ErrUsernameAlreadyExists},
		{"bad gateway registration", wireErr(adapter.ErrBadGateway, app.MsgRegistrationFailed), ErrRegisterOnServer},
		{"bad gateway login", wireErr(adapter.ErrBadGateway, app.MsgLoginFailed), ErrLoginOnServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapAdapterError(tt.in))
		})
	}
}

// An error the mapper does not recognise must survive untouched so the caller
// still sees the transport detail.
func TestMapAdapterError_UnknownErrorPassesThrough(t *testing.T) {
	unknown := errors.New("dial tcp: connection refused")
	assert.Same(t, unknown, mapAdapterError(unknown))

	unmappedBody := wireErr(adapter.ErrConflict, "some other conflict")
	assert.Equal(t, unmappedBody, mapAdapterError(unmappedBody))
}
