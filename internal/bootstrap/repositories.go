package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RaidCompanion_Go/internal/config"
	"github.com/osse101/RaidCompanion_Go/internal/database"
	"github.com/osse101/RaidCompanion_Go/internal/database/postgres"
	"github.com/osse101/RaidCompanion_Go/internal/progress"
	"github.com/osse101/RaidCompanion_Go/internal/repository"
)

// Repositories holds the storage backends selected by configuration
type Repositories struct {
	// Pool is nil for in-memory storage
	Pool *pgxpool.Pool

	// Catalog is the persistent catalog store; nil for in-memory storage
	Catalog repository.Catalog

	// CatalogReader feeds the catalog provider
	CatalogReader repository.CatalogReader

	Progress repository.Progress
}

// InitializeRepositories connects the configured storage. Postgres storage is migrated
// and the catalog files are synced before use; in-memory storage serves the catalog
// bundle straight from the files.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if !cfg.UsesPostgres() {
		slog.Warn(LogMsgUsingMemory)
		bundle, err := LoadCatalog(cfg)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			CatalogReader: bundle,
			Progress:      progress.NewMemoryRepository(),
		}, nil
	}

	slog.Info(LogMsgUsingPostgres, "host", cfg.DBHost, "db", cfg.DBName)
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxIdleTime, DBMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	catalogRepo := postgres.NewCatalogRepository(pool)
	if _, err := SyncCatalog(ctx, cfg, catalogRepo); err != nil {
		pool.Close()
		return nil, err
	}

	return &Repositories{
		Pool:          pool,
		Catalog:       catalogRepo,
		CatalogReader: catalogRepo,
		Progress:      postgres.NewProgressRepository(pool),
	}, nil
}

// Close releases the database pool if one is open
func (r *Repositories) Close() {
	if r.Pool != nil {
		slog.Info(LogMsgClosingDatabase)
		r.Pool.Close()
	}
}
