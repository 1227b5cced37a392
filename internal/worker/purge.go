package worker

import (
	"context"
	"sync/atomic"

	"github.com/osse101/GranblueTeam_Go/internal/logger"
)

// Purger removes expired rows and reports how many were removed
type Purger interface {
	Purge(ctx context.Context) (int64, error)
}

// PurgeJob clears expired edit keys from a persistent store
type PurgeJob struct {
	store  Purger
	purged atomic.Int64
}

// NewPurgeJob wraps a store that can purge expired keys
func NewPurgeJob(store Purger) *PurgeJob {
	return &PurgeJob{store: store}
}

func (j *PurgeJob) Name() string { return JobNameEditKeyPurge }

func (j *PurgeJob) Process(ctx context.Context) error {
	n, err := j.store.Purge(ctx)
	if err != nil {
		return err
	}
	total := j.purged.Add(n)

	log := logger.FromContext(ctx)
	if n > 0 {
		log.Info(LogMsgEditKeysPurged, "count", n, "total", total)
	} else {
		log.Debug(LogMsgEditKeysPurged, "count", n, "total", total)
	}
	return nil
}

// Purged is the number of keys removed across all runs
func (j *PurgeJob) Purged() int64 {
	return j.purged.Load()
}
