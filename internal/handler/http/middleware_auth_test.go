package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/expense-keeper/internal/app"
	"github.com/MKhiriev/expense-keeper/internal/logger"
	"github.com/MKhiriev/expense-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execAuth runs the auth middleware with the given User-ID header value
// ("" means no header) and reports the response plus the user id the
// downstream handler observed.
func execAuth(t *testing.T, headerValue string) (*httptest.ResponseRecorder, int64, bool) {
	t.Helper()

	var (
		sawUserID int64
		sawOK     bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawUserID, sawOK = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	h := &Handler{logger: logger.Nop()}
	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	if headerValue != "" {
		req.Header.Set("User-ID", headerValue)
	}

	recorder := httptest.NewRecorder()
	h.auth(next).ServeHTTP(recorder, req)
	return recorder, sawUserID, sawOK
}

func TestAuthMiddleware_ValidHeaderPassesUserID(t *testing.T) {
	recorder, userID, ok := execAuth(t, "42")

	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, ok, "user id must be placed in the request context")
	assert.Equal(t, int64(42), userID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	recorder, _, ok := execAuth(t, "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), app.MsgAuthenticationRequired)
	assert.False(t, ok, "next handler must not run")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tests := []struct {
		name        string
		headerValue string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-5"},
		{"float", "4.2"},
		{"trailing garbage", "42x"},
		{"overflow", "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, _, ok := execAuth(t, tt.headerValue)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Contains(t, recorder.Body.String(), app.MsgInvalidAuthCredential)
			assert.False(t, ok, "next handler must not run")
		})
	}
}
