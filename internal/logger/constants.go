package logger

// Context Keys
const (
	ContextKeyRequestID = "request_id"
)

// Log level and format names accepted in LOG_LEVEL and LOG_FORMAT
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Fallbacks used by DefaultConfig
const (
	DefaultServiceName = "hensei-gateway"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
	EnvironmentTest    = "test"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
