// Package http provides the HTTP middleware, health endpoints and metrics for
// the page API. Page handlers live in the page subpackage.
package http

import (
	"net/http"
	"time"

	"pagedlist/internal/common/pagination"
	"pagedlist/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Uptime    string                 `json:"uptime"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports the service version and the state of its components.
type HealthHandler struct {
	Version     string
	StartedAt   time.Time
	Pagination  pagination.Config
	RateLimiter *RateLimiter // nil when rate limiting is disabled
}

// ServeHTTP returns 200 when every check passes and 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := map[string]CheckStatus{
		"pagination": h.checkPagination(),
	}
	if h.RateLimiter != nil {
		checks["rate_limiter"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]any{"active_clients": h.RateLimiter.ActiveClients()},
		}
	}

	status, code := "healthy", http.StatusOK
	for _, c := range checks {
		if c.Status != "healthy" {
			status, code = "unhealthy", http.StatusServiceUnavailable
			break
		}
	}

	var uptime time.Duration
	if !h.StartedAt.IsZero() {
		uptime = time.Since(h.StartedAt).Truncate(time.Second)
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    uptime.String(),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkPagination() CheckStatus {
	if err := h.Pagination.Validate(); err != nil {
		return CheckStatus{Status: "unhealthy", Message: err.Error()}
	}
	return CheckStatus{
		Status: "healthy",
		Details: map[string]any{
			"default_page_size": h.Pagination.DefaultPageSize,
			"max_page_size":     h.Pagination.MaxPageSize,
		},
	}
}

// LiveHandler answers liveness probes.
func LiveHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("alive"))
	})
}
