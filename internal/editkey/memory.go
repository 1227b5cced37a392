package editkey

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
	"github.com/osse101/GranblueTeam_Go/internal/logger"
	"github.com/osse101/GranblueTeam_Go/internal/metrics"
)

// MemoryStore holds edit keys in a bounded, expiring LRU.
// Keys are lost on restart.
type MemoryStore struct {
	keys *expirable.LRU[string, string]
}

// NewMemoryStore creates a store holding at most size keys for ttl each
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{keys: expirable.NewLRU[string, string](size, nil, ttl)}
}

func (s *MemoryStore) Get(_ context.Context, localID, partyID string) (string, error) {
	if err := validateKey(localID, partyID); err != nil {
		return "", err
	}
	key, ok := s.keys.Get(cacheKey(localID, partyID))
	if !ok {
		return "", domain.ErrEditKeyNotPresent
	}
	return key, nil
}

func (s *MemoryStore) Put(ctx context.Context, localID, partyID, key string) error {
	if err := validateKey(localID, partyID); err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingKey)
	}

	s.keys.Add(cacheKey(localID, partyID), key)
	metrics.EditKeysStored.WithLabelValues(StoreMemory).Inc()
	logger.FromContext(ctx).Debug(LogMsgEditKeyStored, "party_id", partyID, "store", StoreMemory)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, localID, partyID string) error {
	if err := validateKey(localID, partyID); err != nil {
		return err
	}
	if s.keys.Remove(cacheKey(localID, partyID)) {
		logger.FromContext(ctx).Debug(LogMsgEditKeyRemoved, "party_id", partyID, "store", StoreMemory)
	}
	return nil
}

// Len reports how many keys are held
func (s *MemoryStore) Len() int {
	return s.keys.Len()
}
