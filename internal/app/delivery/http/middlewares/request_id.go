package middlewares

import (
	"context"
	"net/http"

	"mediconnect-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID stamps every request with an identifier, honoring one supplied
// by the caller so distributed traces can line up across services.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
