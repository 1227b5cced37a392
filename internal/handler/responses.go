package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is returned for 400s with per-field detail
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set(headerType, contentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}`))
		return
	}

	w.Header().Set(headerType, contentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondRaw writes a backend body through unchanged
func respondRaw(w http.ResponseWriter, status int, body []byte) {
	if len(body) == 0 {
		w.WriteHeader(status)
		return
	}
	w.Header().Set(headerType, contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondBackend forwards a backend response's status and body
func respondBackend(w http.ResponseWriter, resp *backend.Response) {
	status := http.StatusOK
	if resp.StatusCode != 0 {
		status = resp.StatusCode
	}
	respondRaw(w, status, resp.Body)
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// HandleUnauthorized writes the uniform 401 body for routes that need a signed-in viewer
func HandleUnauthorized(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
}

// HandleNotFound writes the uniform 404 body for unmatched routes
func HandleNotFound(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, ErrMsgNotFound)
}
