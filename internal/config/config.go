package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server
	Port           int
	Environment    string
	ServiceName    string
	Version        string
	TrustedProxies []string
	CookieSecure   bool
	CookieDomain   string

	// Logging
	LogLevel  string
	LogFormat string
	LogDir    string // empty logs to stdout only

	// Backend and CDN
	APIURL         string
	ImageURL       string
	BackendTimeout time.Duration

	// Storage and caches
	DatabaseURL      string // empty keeps edit keys in memory
	DBMaxConns       int32
	CatalogCacheSize int
	CatalogCacheTTL  time.Duration
	EditKeyCacheSize int
	EditKeyTTL       time.Duration
	EditKeyPurge     time.Duration

	// Request limits
	MaxBodyBytes int64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:      getEnv(EnvServiceName, DefaultServiceName),
		Version:          getEnv(EnvVersion, DefaultVersion),
		TrustedProxies:   getEnvAsList(EnvTrustedProxies),
		CookieSecure:     getEnvAsBool(EnvCookieSecure, false),
		CookieDomain:     getEnv(EnvCookieDomain, ""),
		LogLevel:         strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:        strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:           getEnv(EnvLogDir, ""),
		APIURL:           strings.TrimRight(getEnv(EnvAPIURL, ""), "/"),
		ImageURL:         strings.TrimRight(getEnv(EnvImageURL, ""), "/"),
		BackendTimeout:   getEnvAsDuration(EnvBackendTimeout, DefaultBackendTimeout),
		DatabaseURL:      getEnv(EnvDatabaseURL, ""),
		DBMaxConns:       int32(getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns)),
		CatalogCacheSize: getEnvAsInt(EnvCatalogCacheSize, DefaultCatalogCacheSize),
		CatalogCacheTTL:  getEnvAsDuration(EnvCatalogCacheTTL, DefaultCatalogCacheTTL),
		EditKeyCacheSize: getEnvAsInt(EnvEditKeyCacheSize, DefaultEditKeyCacheSize),
		EditKeyTTL:       getEnvAsDuration(EnvEditKeyTTL, DefaultEditKeyTTL),
		EditKeyPurge:     getEnvAsDuration(EnvEditKeyPurge, DefaultEditKeyPurge),
		MaxBodyBytes:     int64(getEnvAsInt(EnvMaxBodyBytes, DefaultMaxBodyBytes)),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("API_URL environment variable must be set")
	}
	if u, err := url.Parse(cfg.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API_URL value %q: must be an absolute URL", cfg.APIURL)
	}

	return cfg, nil
}

// IsDevelopment reports whether the gateway runs in a dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentDevelopment
}

// UsesDatabase reports whether edit keys are persisted in PostgreSQL
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration parses a Go duration string such as "5m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsBool parses a boolean environment variable
func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
