package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GranblueTeam_Go/internal/config"
	"github.com/osse101/GranblueTeam_Go/internal/database"
	"github.com/osse101/GranblueTeam_Go/internal/editkey"
	"github.com/osse101/GranblueTeam_Go/internal/handler"
	"github.com/osse101/GranblueTeam_Go/internal/scheduler"
	"github.com/osse101/GranblueTeam_Go/internal/worker"
)

// Storage is the edit key store plus whatever keeps it running
type Storage struct {
	EditKeys  editkey.Store
	DB        *pgxpool.Pool
	Workers   *worker.Pool
	Scheduler *scheduler.Scheduler
}

// Checkers returns the readiness checks for the store
func (s *Storage) Checkers() []handler.HealthChecker {
	if s.DB == nil {
		return nil
	}
	return []handler.HealthChecker{database.NewHealthChecker(s.DB)}
}

// SetupStorage picks the edit key store. With a DATABASE_URL the keys live in
// PostgreSQL, migrations are applied, and expired keys are purged on a
// schedule. Otherwise an in-memory LRU is used.
func SetupStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if !cfg.UsesDatabase() {
		slog.Info(LogMsgEditKeysInMemory, "size", cfg.EditKeyCacheSize, "ttl", cfg.EditKeyTTL)
		return &Storage{EditKeys: editkey.NewMemoryStore(cfg.EditKeyCacheSize, cfg.EditKeyTTL)}, nil
	}

	pool, err := database.NewPool(cfg.DatabaseURL, int(cfg.DBMaxConns), database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
	}

	store := editkey.NewPostgresStore(pool, cfg.EditKeyTTL)
	s := &Storage{
		EditKeys: store,
		DB:       pool,
		Workers:  worker.NewPool(PurgeWorkers, PurgeQueueSize, PurgeJobTimeout),
	}
	s.Workers.Start()

	if cfg.EditKeyTTL > 0 && cfg.EditKeyPurge > 0 {
		s.Scheduler = scheduler.New(s.Workers)
		s.Scheduler.Schedule(cfg.EditKeyPurge, worker.NewPurgeJob(store))
		slog.Info(LogMsgPurgeScheduled, "interval", cfg.EditKeyPurge, "ttl", cfg.EditKeyTTL)
	}

	slog.Info(LogMsgEditKeysInDatabase, "max_conns", cfg.DBMaxConns)
	return s, nil
}

// Close stops scheduled jobs, drains the worker pool, and closes the database
func (s *Storage) Close() {
	if s.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		s.Scheduler.Stop()
	}
	if s.Workers != nil {
		s.Workers.Stop()
	}
	if s.DB != nil {
		slog.Info(LogMsgClosingDatabase)
		s.DB.Close()
	}
}
