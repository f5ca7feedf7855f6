package repository

import (
	"context"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// CatalogReader loads the catalog collections
type CatalogReader interface {
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	GetAllQuests(ctx context.Context) ([]domain.Quest, error)
	GetAllWorkstations(ctx context.Context) ([]domain.Workstation, error)
	GetAllProjects(ctx context.Context) ([]domain.Project, error)
}

// Catalog defines the interface for catalog persistence
type Catalog interface {
	CatalogReader

	UpsertItem(ctx context.Context, item *domain.Item) error
	UpsertQuest(ctx context.Context, quest *domain.Quest) error
	UpsertWorkstation(ctx context.Context, ws *domain.Workstation) error
	UpsertProject(ctx context.Context, project *domain.Project) error
	// DeleteMissing removes rows of collection whose id is not in keep and returns how many were removed
	DeleteMissing(ctx context.Context, collection string, keep []string) (int, error)

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
