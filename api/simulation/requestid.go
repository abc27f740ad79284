package simulation

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey struct{}

// requestIDHeader is echoed back to clients for correlation.
const requestIDHeader = "X-Request-Id"

// RequestID tags every request with a UUID, storing it in the request
// context and echoing it in the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), ctxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request id stored by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
