package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/inputguard/pkg/validator"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

// incoming IDs are checked by the same engine that validates field input.
var idEngine = validator.MustNew(
	validator.WithCustomPattern(`^[a-zA-Z0-9_-]{1,128}$`),
)

// Valid reports whether id may be reused as a request ID.
func Valid(id string) bool {
	return len(id) <= maxIDLength && idEngine.Valid(id)
}

// Middleware reuses a valid X-Request-ID header or generates a UUIDv4,
// stores the ID in the request context and echoes it in the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !Valid(requestID) {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}
