package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/GranblueTeam_Go/internal/handler"
)

const (
	healthTimeout  = 5 * time.Second
	slowThreshold  = time.Second
	readinessRoute = "/readyz"
)

type HealthCheckCommand struct {
	client *http.Client
}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check gateway readiness (GATEWAY_URL or first argument)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := getEnv(envGatewayURL, defaultGatewayURL)
	if len(args) > 0 {
		base = args[0]
	}
	base = strings.TrimRight(base, "/")

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	client := c.client
	if client == nil {
		client = &http.Client{Timeout: healthTimeout}
	}

	start := time.Now()
	resp, err := client.Get(base + readinessRoute)
	if err != nil {
		PrintError("Health check failed: %v", err)
		return err
	}
	defer resp.Body.Close()
	duration := time.Since(start)

	var body handler.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("unreadable readiness response: %w", err)
	}
	for name, status := range body.Checks {
		fmt.Fprintf(out, "  %-10s %s\n", name, status)
	}

	if resp.StatusCode != http.StatusOK {
		PrintError("Gateway not ready: %s", body.Status)
		return fmt.Errorf("readiness returned %d", resp.StatusCode)
	}

	if duration > slowThreshold {
		PrintWarning("Health check warning: slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}
	return nil
}
