package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/expense-keeper/internal/app"
	"github.com/MKhiriev/expense-keeper/internal/logger"
	"github.com/MKhiriev/expense-keeper/internal/utils"
)

// userIDHeader identifies the requesting user on every protected endpoint.
const userIDHeader = "User-ID"

// auth is the HTTP middleware guarding every expense endpoint.
//
// It reads the "User-ID" header, requires it to parse as a positive integer,
// and stores the value in the request context under [utils.UserIDCtxKey].
// Downstream handlers take the user identity exclusively from the context;
// nothing in a request body or URL can address another user's rows.
//
// Requests are rejected with HTTP 401 Unauthorized in two cases:
//   - The header is absent ([app.MsgAuthenticationRequired]).
//   - The header is present but is not a positive integer
//     ([app.MsgInvalidAuthCredential]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		headerValue := r.Header.Get(userIDHeader)
		if headerValue == "" {
			log.Error().Msg("request without User-ID header")
			http.Error(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
			return
		}

		userID, err := strconv.ParseInt(headerValue, 10, 64)
		if err != nil || userID <= 0 {
			log.Error().Str("user_id_header", headerValue).Msg("malformed User-ID header")
			http.Error(w, app.MsgInvalidAuthCredential, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
