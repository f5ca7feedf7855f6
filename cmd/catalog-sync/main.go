// Command catalog-sync validates the catalog files and syncs them into PostgreSQL.
//
// Usage:
//
//	catalog-sync [-validate-only] [-force]
//
// With -validate-only no database connection is made. With -force the recorded file
// hashes are ignored so every collection is compared row by row.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/RaidCompanion_Go/internal/bootstrap"
	"github.com/osse101/RaidCompanion_Go/internal/config"
	"github.com/osse101/RaidCompanion_Go/internal/database"
	"github.com/osse101/RaidCompanion_Go/internal/database/postgres"
	"github.com/osse101/RaidCompanion_Go/internal/logger"
)

const syncTimeout = 2 * time.Minute

func main() {
	validateOnly := flag.Bool("validate-only", false, "validate the catalog files without touching the database")
	force := flag.Bool("force", false, "ignore recorded file hashes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "raidcompanion-catalog-sync", cfg.Version, cfg.Environment))

	if *validateOnly {
		if _, err := bootstrap.LoadCatalog(cfg); err != nil {
			slog.Error("Catalog validation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Catalog is valid")
		return
	}

	if !cfg.UsesPostgres() {
		slog.Error("catalog-sync needs STORAGE=postgres")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	if err := run(ctx, cfg, *force); err != nil {
		slog.Error("Catalog sync failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, force bool) error {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, bootstrap.DBMaxIdleTime, bootstrap.DBMaxLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	repo := postgres.NewCatalogRepository(pool)
	if force {
		if _, err := pool.Exec(ctx, "DELETE FROM catalog_sync_metadata"); err != nil {
			return err
		}
	}

	result, err := bootstrap.SyncCatalog(ctx, cfg, repo)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
