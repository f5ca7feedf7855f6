package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/osse101/RaidCompanion_Go/configs"
	"github.com/osse101/RaidCompanion_Go/internal/catalog"
	"github.com/osse101/RaidCompanion_Go/internal/config"
	"github.com/osse101/RaidCompanion_Go/internal/repository"
)

// CatalogFiles returns the catalog directory: CATALOG_DIR when set, the embedded files otherwise
func CatalogFiles(cfg *config.Config) fs.FS {
	if cfg.CatalogDir != "" {
		return os.DirFS(cfg.CatalogDir)
	}
	return configs.Catalog()
}

// LoadCatalog loads and validates the catalog files, logging referential warnings
func LoadCatalog(cfg *config.Config) (*catalog.Bundle, error) {
	return loadCatalog(catalog.NewLoader(configs.Schemas()), cfg)
}

func loadCatalog(loader catalog.Loader, cfg *config.Config) (*catalog.Bundle, error) {
	source := "embedded"
	if cfg.CatalogDir != "" {
		source = cfg.CatalogDir
	}
	slog.Info(LogMsgLoadingCatalog, "source", source)

	bundle, err := loader.Load(CatalogFiles(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	warnings, err := loader.Validate(bundle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}
	for _, w := range warnings {
		slog.Warn(LogMsgCatalogWarning, "detail", w)
	}

	slog.Info(LogMsgCatalogLoaded,
		"version", bundle.Version(),
		"items", len(bundle.Items),
		"quests", len(bundle.Quests),
		"workstations", len(bundle.Workstations),
		"projects", len(bundle.Projects))
	return bundle, nil
}

// SyncCatalog loads, validates and syncs the catalog files to the database.
// Collections whose file hash matches the last sync are skipped.
func SyncCatalog(ctx context.Context, cfg *config.Config, repo repository.Catalog) (*catalog.SyncResult, error) {
	if repo == nil {
		return nil, errors.New(ErrMsgCatalogSyncRequires)
	}

	loader := catalog.NewLoader(configs.Schemas())
	bundle, err := loadCatalog(loader, cfg)
	if err != nil {
		return nil, err
	}

	result, err := loader.SyncToDatabase(ctx, bundle, repo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if !result.Changed() {
		slog.Info(LogMsgCatalogUnchanged)
		return result, nil
	}
	for name, c := range result.Collections {
		slog.Info(LogMsgCatalogSynced,
			"collection", name,
			"inserted", c.Inserted,
			"updated", c.Updated,
			"skipped", c.Skipped,
			"removed", c.Removed)
	}
	return result, nil
}
