package editkey

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
	"github.com/osse101/GranblueTeam_Go/internal/logger"
	"github.com/osse101/GranblueTeam_Go/internal/metrics"
)

// Querier is the subset of pgxpool.Pool the store needs
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps edit keys in the edit_keys table so they survive restarts
type PostgresStore struct {
	db  Querier
	ttl time.Duration
}

// NewPostgresStore creates a store; keys older than ttl are treated as absent.
// A zero ttl keeps keys forever.
func NewPostgresStore(db Querier, ttl time.Duration) *PostgresStore {
	return &PostgresStore{db: db, ttl: ttl}
}

func (s *PostgresStore) cutoff() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(-s.ttl)
}

func (s *PostgresStore) Get(ctx context.Context, localID, partyID string) (string, error) {
	if err := validateKey(localID, partyID); err != nil {
		return "", err
	}

	query := `
		SELECT edit_key
		FROM edit_keys
		WHERE local_id = $1 AND party_id = $2 AND updated_at > $3
	`
	var key string
	err := s.db.QueryRow(ctx, query, localID, partyID, s.cutoff()).Scan(&key)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrEditKeyNotPresent
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrEditKeyStore, ErrMsgQueryFailed, err)
	}
	return key, nil
}

func (s *PostgresStore) Put(ctx context.Context, localID, partyID, key string) error {
	if err := validateKey(localID, partyID); err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingKey)
	}

	query := `
		INSERT INTO edit_keys (local_id, party_id, edit_key, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (local_id, party_id)
		DO UPDATE SET edit_key = EXCLUDED.edit_key, updated_at = NOW()
	`
	if _, err := s.db.Exec(ctx, query, localID, partyID, key); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrEditKeyStore, ErrMsgQueryFailed, err)
	}

	metrics.EditKeysStored.WithLabelValues(StorePostgres).Inc()
	logger.FromContext(ctx).Debug(LogMsgEditKeyStored, "party_id", partyID, "store", StorePostgres)
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, localID, partyID string) error {
	if err := validateKey(localID, partyID); err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM edit_keys WHERE local_id = $1 AND party_id = $2`, localID, partyID)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrEditKeyStore, ErrMsgQueryFailed, err)
	}
	if tag.RowsAffected() > 0 {
		logger.FromContext(ctx).Debug(LogMsgEditKeyRemoved, "party_id", partyID, "store", StorePostgres)
	}
	return nil
}

// Purge deletes keys past the ttl and returns how many were removed
func (s *PostgresStore) Purge(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM edit_keys WHERE updated_at <= $1`, s.cutoff())
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrEditKeyStore, ErrMsgQueryFailed, err)
	}
	return tag.RowsAffected(), nil
}
