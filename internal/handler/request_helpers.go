package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/logger"
	"github.com/osse101/GranblueTeam_Go/internal/party"
	"github.com/osse101/GranblueTeam_Go/internal/session"
	"github.com/osse101/GranblueTeam_Go/internal/validation"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this returns an error, the response has already been written and the handler should return.
//
// Example usage:
//
//	var req LoginRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	return validateRequest(w, r, req, actionName)
}

// validateRequest runs struct validation, writing a 400 with field detail on failure
func validateRequest(w http.ResponseWriter, r *http.Request, req interface{}, actionName string) error {
	if err := GetValidator().ValidateStruct(req); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// readValidatedBody reads a raw body and checks it against a JSON schema.
// Like DecodeAndValidateRequest, a non-nil error means the response was written.
func readValidatedBody(w http.ResponseWriter, r *http.Request, bodies validation.BodyValidator, schema, actionName string) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return nil, err
	}
	if err := bodies.Validate(schema, body); err != nil {
		respondServiceError(w, r, actionName, err)
		return nil, err
	}
	return body, nil
}

// GetQueryParam retrieves a required query parameter.
// If it is missing, an error response is written and ok is false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// actorFrom builds the party actor from the request session
func actorFrom(r *http.Request) party.Actor {
	s := session.FromContext(r.Context())
	return party.Actor{
		UserID:  s.UserID(),
		Token:   s.Token(),
		LocalID: s.LocalID,
		Locale:  s.Locale,
	}
}

// credentialsFrom returns the bearer credentials of the signed-in viewer, if any
func credentialsFrom(r *http.Request) backend.Credentials {
	return backend.Credentials{Token: session.FromContext(r.Context()).Token()}
}

// localeFrom is the resolved display language for the request
func localeFrom(r *http.Request) string {
	return session.FromContext(r.Context()).Locale
}
