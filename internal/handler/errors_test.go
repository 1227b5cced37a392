package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/domain"
	"github.com/osse101/GranblueTeam_Go/internal/validation"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"backend 404", &backend.APIError{StatusCode: 404, Message: "Record not found"}, http.StatusNotFound, ErrMsgNotFound},
		{"backend 422 keeps message", &backend.APIError{StatusCode: 422, Message: "name is invalid"}, 422, "name is invalid"},
		{"wrapped backend error", fmt.Errorf("get party: %w", &backend.APIError{StatusCode: 401, Message: "unauthorized"}), 401, "unauthorized"},
		{"missing param", fmt.Errorf("%w: shortcode", domain.ErrMissingParam), http.StatusNotFound, ErrMsgNotFound},
		{"unknown category", domain.ErrUnknownCategory, http.StatusNotFound, ErrMsgNotFound},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestSummary},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, ErrMsgForbidden},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := mapServiceError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestRespondServiceError_SchemaFields(t *testing.T) {
	rec := httptest.NewRecorder()
	err := &validation.SchemaError{Fields: []string{"/party/name: maxLength", "/party/element: maximum"}}

	respondServiceError(rec, httptest.NewRequest(http.MethodPost, "/", nil), "create party", err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request","fields":{"/party/name":"maxLength","/party/element":"maximum"}}`, rec.Body.String())
}

func TestRespondServiceError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), "get party", errors.New("dial tcp 10.0.0.3:3000: refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}
