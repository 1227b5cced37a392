package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
)

// APIError is a non-2xx response from the backend.
// Handlers re-emit StatusCode unchanged.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: backend status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// Is lets errors.Is match APIError against the domain sentinels for common statuses
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case domain.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case domain.ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case domain.ErrUpstream:
		return true
	}
	return false
}

// errorBody covers the error shapes the backend uses
type errorBody struct {
	Error   json.RawMessage `json:"error"`
	Errors  json.RawMessage `json:"errors"`
	Message string          `json:"message"`
}

func newAPIError(endpoint string, status int, body []byte) *APIError {
	return &APIError{
		StatusCode: status,
		Message:    extractMessage(status, body),
		Endpoint:   endpoint,
	}
}

// extractMessage pulls a human readable message out of an error body,
// falling back to the status text.
func extractMessage(status int, body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if msg := rawMessage(parsed.Error); msg != "" {
			return msg
		}
		if msg := rawMessage(parsed.Errors); msg != "" {
			return msg
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	if text := http.StatusText(status); text != "" {
		return strings.ToLower(text)
	}
	return domain.ErrMsgUpstream
}

// rawMessage flattens a string, a list of strings, a {message} object,
// or a field->messages map into one line.
func rawMessage(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}

	var fields map[string][]string
	if err := json.Unmarshal(raw, &fields); err == nil && len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for field, msgs := range fields {
			parts = append(parts, field+" "+strings.Join(msgs, ", "))
		}
		sort.Strings(parts)
		return strings.Join(parts, "; ")
	}

	return ""
}
