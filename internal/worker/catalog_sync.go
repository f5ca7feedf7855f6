package worker

import (
	"context"
	"fmt"

	"github.com/osse101/RaidCompanion_Go/internal/logger"
)

// CatalogSyncer pushes the catalog files into storage and reports whether anything changed
type CatalogSyncer interface {
	Sync(ctx context.Context) (changed bool, err error)
}

// SnapshotInvalidator drops a cached catalog snapshot
type SnapshotInvalidator interface {
	Invalidate()
}

// CatalogSyncJob re-syncs the catalog and invalidates the served snapshot when it changed
type CatalogSyncJob struct {
	syncer   CatalogSyncer
	snapshot SnapshotInvalidator
}

// NewCatalogSyncJob creates a catalog sync job
func NewCatalogSyncJob(syncer CatalogSyncer, snapshot SnapshotInvalidator) *CatalogSyncJob {
	return &CatalogSyncJob{syncer: syncer, snapshot: snapshot}
}

// Process runs one sync
func (j *CatalogSyncJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCatalogSyncStarting)

	changed, err := j.syncer.Sync(ctx)
	if err != nil {
		log.Warn(LogMsgCatalogSyncFailed, "error", err)
		return fmt.Errorf("catalog sync: %w", err)
	}
	if !changed {
		log.Debug(LogMsgCatalogSyncUnchanged)
		return nil
	}

	j.snapshot.Invalidate()
	log.Info(LogMsgCatalogSyncChanged)
	return nil
}
