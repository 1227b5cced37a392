package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/domain"
	"github.com/osse101/GranblueTeam_Go/internal/logger"
	"github.com/osse101/GranblueTeam_Go/internal/validation"
)

// mapServiceError converts a service error into a status and client message.
// Backend statuses are preserved; anything unrecognised is a generic 500.
func mapServiceError(err error) (int, string) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound, ErrMsgNotFound
		}
		return apiErr.StatusCode, apiErr.Message
	}

	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrPartyNotFound),
		errors.Is(err, domain.ErrMissingParam),
		errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusNotFound, ErrMsgNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbidden
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs err and writes the mapped error response
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := logger.FromContext(r.Context())

	var schemaErr *validation.SchemaError
	if errors.As(err, &schemaErr) {
		log.Warn(LogMsgValidationFailed, "op", op, "fields", schemaErr.Fields)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: schemaFields(schemaErr),
		})
		return
	}

	status, message := mapServiceError(err)
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgUnexpectedError, "op", op, "status", status, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "op", op, "status", status, "error", err)
	}
	respondError(w, status, message)
}

// schemaFields turns "/party/name: maxLength" entries into a field map
func schemaFields(err *validation.SchemaError) map[string]string {
	fields := make(map[string]string, len(err.Fields))
	for _, f := range err.Fields {
		location, keyword, found := strings.Cut(f, ": ")
		if !found {
			keyword = "invalid"
		}
		fields[location] = keyword
	}
	return fields
}
