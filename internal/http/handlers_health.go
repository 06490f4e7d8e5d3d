package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	healthResponse      = `{"status":"ok"}`
	unhealthyResponse   = `{"status":"unavailable"}`
	healthCheckDeadline = 2 * time.Second
)

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

// healthHandler returns 200 when every check passes and 503 otherwise.
func healthHandler(logger *slog.Logger, checks ...HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, body := http.StatusOK, healthResponse
		if len(checks) > 0 {
			ctx, cancel := context.WithTimeout(r.Context(), healthCheckDeadline)
			defer cancel()
			for _, check := range checks {
				if err := check(ctx); err != nil {
					logger.WarnContext(ctx, "health check failed", "error", err)
					status, body = http.StatusServiceUnavailable, unhealthyResponse
					break
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if r.Method == http.MethodHead {
			return
		}
		if _, err := io.WriteString(w, body); err != nil {
			// Nothing more to do if the client connection is gone.
			return
		}
	}
}
