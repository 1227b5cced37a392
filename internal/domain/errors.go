package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgNotFound        = "not found"
	ErrMsgPartyNotFound   = "party not found"
	ErrMsgMissingParam    = "missing route parameter"
	ErrMsgUnknownCategory = "unknown grid category"

	// Session errors
	ErrMsgUnauthorized = "unauthorized"
	ErrMsgForbidden    = "forbidden"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Backend errors
	ErrMsgUpstream          = "backend request failed"
	ErrMsgInvalidUpstream   = "malformed backend response"
	ErrMsgEditKeyStore      = "edit key store error"
	ErrMsgEditKeyNotPresent = "edit key not present"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound        = errors.New(ErrMsgNotFound)
	ErrPartyNotFound   = errors.New(ErrMsgPartyNotFound)
	ErrMissingParam    = errors.New(ErrMsgMissingParam)
	ErrUnknownCategory = errors.New(ErrMsgUnknownCategory)

	ErrUnauthorized = errors.New(ErrMsgUnauthorized)
	ErrForbidden    = errors.New(ErrMsgForbidden)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrUpstream          = errors.New(ErrMsgUpstream)
	ErrInvalidUpstream   = errors.New(ErrMsgInvalidUpstream)
	ErrEditKeyStore      = errors.New(ErrMsgEditKeyStore)
	ErrEditKeyNotPresent = errors.New(ErrMsgEditKeyNotPresent)
)
