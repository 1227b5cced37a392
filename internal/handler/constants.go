package handler

import "time"

// Generic HTTP error messages for client responses.
// Both handlers and tests reference these constants.
const (
	ErrMsgNotFound              = "not found"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgUnauthorized          = "You must be signed in to do that"
	ErrMsgForbidden             = "You do not have permission to do that"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgUnknownCatalog        = "Unknown catalog resource"
	ErrMsgInvalidCredentials    = "Invalid email or password"
)

// Success messages
const (
	MsgLoggedOut   = "Signed out"
	MsgSettingsSet = "Settings saved"
)

// Response statuses for health endpoints
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response"
	LogMsgDecodeFailed       = "Failed to decode request"
	LogMsgValidationFailed   = "Request failed validation"
	LogMsgServiceError       = "Request failed"
	LogMsgUnexpectedError    = "Unexpected error"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgLoginSucceeded     = "User signed in"
	LogMsgLoginFailed        = "Sign in failed"
	LogMsgProfileFetchFailed = "Failed to fetch profile after sign in"
	LogMsgLogoutRevokeFailed = "Token revoke failed, cookies cleared anyway"
	LogMsgCookieWriteFailed  = "Failed to write session cookie"
	LogMsgCatalogInvalidated = "Catalog entry invalidated"
)

// Route parameters
const (
	// ParamParty is a shortcode on reads and remixes, a party id on mutations
	ParamParty    = "party"
	ParamCategory = "category"
	ParamGridID   = "gridID"
	ParamID       = "id"
	ParamUsername = "username"
	ParamObject   = "object"
)

const (
	// readinessTimeout bounds all readiness checks together
	readinessTimeout = 2 * time.Second
	// maxPooledBuffer is the largest buffer returned to the pool
	maxPooledBuffer = 64 << 10
	contentTypeJSON = "application/json"
	headerType      = "Content-Type"
)
