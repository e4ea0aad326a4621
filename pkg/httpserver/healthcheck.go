package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/inputguard/pkg/logger"
)

// Check reports whether a dependency of the service is usable.
type Check func(context.Context) error

type healthResponse struct {
	Status string `json:"status"`
}

// HealthCheckHandler serves liveness and readiness probes.
//
//   - Without checks it answers 200 {"status":"alive"}.
//   - With checks it answers 200 {"status":"ready"} when all pass and
//     503 {"status":"not_ready"} on the first failure.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			writeHealth(w, http.StatusOK, "alive")
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.WarnContext(r.Context(), "readiness check failed", logger.Error(err))
				writeHealth(w, http.StatusServiceUnavailable, "not_ready")
				return
			}
		}
		writeHealth(w, http.StatusOK, "ready")
	}
}

func writeHealth(w http.ResponseWriter, status int, state string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(healthResponse{Status: state})
}
