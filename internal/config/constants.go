package config

import "time"

// Environment variable keys
const (
	EnvPort             = "PORT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvCookieSecure     = "COOKIE_SECURE"
	EnvCookieDomain     = "COOKIE_DOMAIN"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogDir           = "LOG_DIR"
	EnvAPIURL           = "API_URL"
	EnvImageURL         = "IMAGE_URL"
	EnvBackendTimeout   = "BACKEND_TIMEOUT"
	EnvDatabaseURL      = "DATABASE_URL"
	EnvDBMaxConns       = "DB_MAX_CONNS"
	EnvCatalogCacheSize = "CATALOG_CACHE_SIZE"
	EnvCatalogCacheTTL  = "CATALOG_CACHE_TTL"
	EnvEditKeyCacheSize = "EDIT_KEY_CACHE_SIZE"
	EnvEditKeyTTL       = "EDIT_KEY_TTL"
	EnvEditKeyPurge     = "EDIT_KEY_PURGE_INTERVAL"
	EnvMaxBodyBytes     = "MAX_BODY_BYTES"
	EnvSchemaVersion    = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort             = "8080"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "hensei-gateway"
	DefaultVersion          = "dev"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultBackendTimeout   = 10 * time.Second
	DefaultDBMaxConns       = 10
	DefaultCatalogCacheSize = 2000
	DefaultCatalogCacheTTL  = 10 * time.Minute
	DefaultEditKeyCacheSize = 10000
	DefaultEditKeyTTL       = 30 * 24 * time.Hour
	DefaultEditKeyPurge     = time.Hour
	DefaultMaxBodyBytes     = 1 << 20
)

// Environment names
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentStaging     = "staging"
	EnvironmentProduction  = "production"
)
