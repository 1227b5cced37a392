// Package editkey keeps the edit keys the backend issues for anonymous
// parties, scoped to the device token that created them.
package editkey

import (
	"context"
	"fmt"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
)

// Store persists edit keys by (local id, party id)
type Store interface {
	// Get returns domain.ErrEditKeyNotPresent when no key is held
	Get(ctx context.Context, localID, partyID string) (string, error)
	Put(ctx context.Context, localID, partyID, key string) error
	Delete(ctx context.Context, localID, partyID string) error
}

func validateKey(localID, partyID string) error {
	if localID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingLocalID)
	}
	if partyID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingPartyID)
	}
	return nil
}

func cacheKey(localID, partyID string) string {
	return localID + ":" + partyID
}
