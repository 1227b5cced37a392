package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedLogin = "⚠️ SECURITY ALERT: Multiple failed sign in attempts"
	SecurityAlertHighRate    = "⚠️ SECURITY ALERT: Blocking high request rate"
	SecurityAlertLockedOut   = "⚠️ SECURITY ALERT: Sign in locked for address"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgLoginRejected    = "Sign in rejected"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderEditKey        = "X-Edit-Key"
	HeaderCookie         = "Cookie"
	HeaderRequestID      = "X-Request-ID"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Paths that skip request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// RedactedHeaders are replaced in request logs
var RedactedHeaders = []string{
	HeaderAuthorization,
	HeaderEditKey,
	HeaderCookie,
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Suspicious activity defaults
const (
	DefaultDetectorWindow    = 5 * time.Minute
	DefaultMaxRequests       = 1000
	DefaultFailedLoginAlert  = 5
	DefaultFailedLoginLimit  = 10
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultMaxBodyBytes      = 1 << 20
)
