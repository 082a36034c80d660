package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/expense-keeper/internal/app"
	"github.com/MKhiriev/expense-keeper/internal/service"
	"github.com/MKhiriev/expense-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidDateRange:    http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrExpenseNotSaved:       http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the response body for a service-layer error. Bodies
// come from the shared app message vocabulary so clients can match on them;
// anything unmapped collapses into the generic 500 message to avoid leaking
// internals.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgInvalidDataProvided
	case errors.Is(err, service.ErrInvalidDateRange):
		return app.MsgInvalidDateRange
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidUsernamePassword
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return app.MsgUsernameAlreadyExists
	default:
		return app.MsgInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	http.Error(w, messageFromError(err), statusFromError(err))
}
