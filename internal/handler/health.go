package handler

import (
	"context"
	"net/http"

	"github.com/osse101/GranblueTeam_Go/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthChecker is a dependency that can report readiness
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the gateway process is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports ready only when every checker passes
// @Summary Readiness check
// @Description Returns OK if the backend and, when configured, the database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checkers ...HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		resp := HealthResponse{Status: HealthStatusOK, Checks: make(map[string]string, len(checkers))}
		status := http.StatusOK
		for _, c := range checkers {
			if err := c.Check(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgReadinessFailed, "check", c.Name(), "error", err)
				resp.Checks[c.Name()] = HealthStatusUnavailable
				resp.Status = HealthStatusUnavailable
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[c.Name()] = HealthStatusOK
		}

		respondJSON(w, status, resp)
	}
}
