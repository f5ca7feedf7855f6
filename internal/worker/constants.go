package worker

import "time"

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobQueueFull    = "Worker queue full, job dropped"
)

// Log messages - catalog sync job
const (
	LogMsgCatalogSyncStarting  = "Periodic catalog sync starting"
	LogMsgCatalogSyncChanged   = "Catalog changed, snapshot invalidated"
	LogMsgCatalogSyncUnchanged = "Catalog unchanged"
	LogMsgCatalogSyncFailed    = "Periodic catalog sync failed"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 2 * time.Minute

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
