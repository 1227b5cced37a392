package backend

import (
	"context"
	"fmt"
)

// HealthCheckName labels the backend in readiness output
const HealthCheckName = "backend"

// HealthChecker reports whether the backend API answers its version endpoint
type HealthChecker struct {
	client *Client
}

// NewHealthChecker wraps a client for readiness checks
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client}
}

// Name identifies the check in readiness output
func (h *HealthChecker) Name() string {
	return HealthCheckName
}

// Check calls the backend version endpoint
func (h *HealthChecker) Check(ctx context.Context) error {
	if _, err := h.client.Version(ctx); err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	return nil
}
