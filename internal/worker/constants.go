package worker

import "time"

// Pool defaults
const (
	DefaultWorkers    = 1
	DefaultQueueSize  = 16
	DefaultJobTimeout = time.Minute
)

// Job names
const (
	JobNameEditKeyPurge = "edit_key_purge"
)

// Log messages
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobCompleted = "Worker job completed"
	LogMsgWorkerQueueFull    = "Worker queue full, dropping job"
	LogMsgEditKeysPurged     = "Purged expired edit keys"
)
