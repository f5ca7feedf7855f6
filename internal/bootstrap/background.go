package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RaidCompanion_Go/internal/config"
	"github.com/osse101/RaidCompanion_Go/internal/repository"
	"github.com/osse101/RaidCompanion_Go/internal/scheduler"
	"github.com/osse101/RaidCompanion_Go/internal/worker"
)

// Background owns the worker pool and the scheduler feeding it
type Background struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// catalogSyncer re-runs the startup catalog sync for the periodic job
type catalogSyncer struct {
	cfg  *config.Config
	repo repository.Catalog
}

func (s catalogSyncer) Sync(ctx context.Context) (bool, error) {
	result, err := SyncCatalog(ctx, s.cfg, s.repo)
	if err != nil {
		return false, err
	}
	return result.Changed(), nil
}

// StartBackground starts the periodic jobs the configuration asks for.
// It returns nil when there is nothing to run.
func StartBackground(cfg *config.Config, repos *Repositories, services *Services) *Background {
	if !cfg.UsesPostgres() || cfg.CatalogSyncInterval <= 0 || repos.Catalog == nil {
		return nil
	}

	pool := worker.NewPool(BackgroundWorkers, BackgroundQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	job := worker.NewCatalogSyncJob(catalogSyncer{cfg: cfg, repo: repos.Catalog}, services.Catalog)
	sched.Schedule(JobNameCatalogSync, cfg.CatalogSyncInterval, job)

	slog.Info(LogMsgBackgroundJobsStarted, "catalog_sync_interval", cfg.CatalogSyncInterval.String())
	return &Background{Pool: pool, Scheduler: sched}
}

// Stop halts the scheduler, then waits for running jobs
func (b *Background) Stop() {
	if b == nil {
		return
	}
	slog.Info(LogMsgStoppingBackground)
	b.Scheduler.Stop()
	b.Pool.Stop()
}
