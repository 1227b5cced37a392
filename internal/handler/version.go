package handler

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"     // Set via -X flag at build time
	BuildTime = "unknown" // Set via -X flag at build time
	GitCommit = "unset"   // Set via -X flag at build time
)

// BackendVersioner reports the backend's deployed version
type BackendVersioner interface {
	Version(ctx context.Context) (*backend.Response, error)
}

// HandleVersion returns version information about the gateway
// @Summary Gateway version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:   getVersionInfo(),
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		})
	}
}

// HandleBackendVersion proxies the backend version endpoint
// @Summary Backend version
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Router /api/version [get]
func HandleBackendVersion(b BackendVersioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := b.Version(r.Context())
		if err != nil {
			respondServiceError(w, r, "version", err)
			return
		}
		respondBackend(w, resp)
	}
}

// getVersionInfo returns version from build-time variable or environment
func getVersionInfo() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
