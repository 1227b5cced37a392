package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// DefaultMaxConnIdleTime closes idle connections after this long
	DefaultMaxConnIdleTime = 5 * time.Minute

	// DefaultMaxConnLifetime recycles connections after this long
	DefaultMaxConnLifetime = 30 * time.Minute

	// DefaultPingTimeout bounds the startup ping
	DefaultPingTimeout = 5 * time.Second
)

// HealthCheckName labels the database in readiness output
const HealthCheckName = "database"

// migrationsDir is the embedded directory holding goose SQL files
const migrationsDir = "migrations"

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToApplyMigrations = "failed to apply migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgMigrationsUpToDate              = "Database migrations up to date"
)
