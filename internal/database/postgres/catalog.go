package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/repository"
)

// CatalogRepository implements repository.Catalog for PostgreSQL.
// Collections are returned ordered by id.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(pool *pgxpool.Pool) repository.Catalog {
	return &CatalogRepository{pool: pool}
}

// GetAllItems returns every catalog item
func (r *CatalogRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	items, err := queryDocuments[domain.Item](ctx, r.pool, `SELECT data FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return items, nil
}

// GetAllQuests returns every quest
func (r *CatalogRepository) GetAllQuests(ctx context.Context) ([]domain.Quest, error) {
	quests, err := queryDocuments[domain.Quest](ctx, r.pool, `SELECT data FROM quests ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get quests: %w", err)
	}
	return quests, nil
}

// GetAllWorkstations returns every workstation
func (r *CatalogRepository) GetAllWorkstations(ctx context.Context) ([]domain.Workstation, error) {
	ws, err := queryDocuments[domain.Workstation](ctx, r.pool, `SELECT data FROM workstations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get workstations: %w", err)
	}
	return ws, nil
}

// GetAllProjects returns every project
func (r *CatalogRepository) GetAllProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := queryDocuments[domain.Project](ctx, r.pool, `SELECT data FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return projects, nil
}

// UpsertItem inserts or replaces an item
func (r *CatalogRepository) UpsertItem(ctx context.Context, item *domain.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode item: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO items (id, item_type, rarity, value, data, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			item_type = EXCLUDED.item_type,
			rarity = EXCLUDED.rarity,
			value = EXCLUDED.value,
			data = EXCLUDED.data,
			updated_at = NOW()`,
		item.ID, item.Type, string(item.Rarity), item.Value, data)
	if err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}
	return nil
}

// UpsertQuest inserts or replaces a quest
func (r *CatalogRepository) UpsertQuest(ctx context.Context, q *domain.Quest) error {
	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("failed to encode quest: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO quests (id, trader, data, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE SET
			trader = EXCLUDED.trader,
			data = EXCLUDED.data,
			updated_at = NOW()`,
		q.ID, q.Trader, data)
	if err != nil {
		return fmt.Errorf("failed to upsert quest: %w", err)
	}
	return nil
}

// UpsertWorkstation inserts or replaces a workstation
func (r *CatalogRepository) UpsertWorkstation(ctx context.Context, ws *domain.Workstation) error {
	return r.upsertDocument(ctx, "workstations", ws.ID, ws)
}

// UpsertProject inserts or replaces a project
func (r *CatalogRepository) UpsertProject(ctx context.Context, p *domain.Project) error {
	return r.upsertDocument(ctx, "projects", p.ID, p)
}

func (r *CatalogRepository) upsertDocument(ctx context.Context, collection, id string, doc any) error {
	table, ok := collectionTables[collection]
	if !ok {
		return fmt.Errorf("%s: %s", ErrMsgUnknownCollection, collection)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", collection, err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO `+table+` (id, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		id, data)
	if err != nil {
		return fmt.Errorf("failed to upsert %s: %w", collection, err)
	}
	return nil
}

// DeleteMissing removes rows of collection whose id is not in keep
func (r *CatalogRepository) DeleteMissing(ctx context.Context, collection string, keep []string) (int, error) {
	table, ok := collectionTables[collection]
	if !ok {
		return 0, fmt.Errorf("%s: %s", ErrMsgUnknownCollection, collection)
	}
	if keep == nil {
		keep = []string{}
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM `+table+` WHERE NOT (id = ANY($1))`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale %s: %w", collection, err)
	}
	return int(tag.RowsAffected()), nil
}

// GetSyncMetadata retrieves sync metadata for a catalog file
func (r *CatalogRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var (
		meta    domain.SyncMetadata
		modTime pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM catalog_sync_metadata
		WHERE config_name = $1`, configName).
		Scan(&meta.ConfigName, &meta.LastSyncTime, &meta.FileHash, &modTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New(ErrMsgSyncMetadataNotFound)
		}
		return nil, fmt.Errorf("failed to get sync metadata: %w", err)
	}
	if modTime.Valid {
		meta.FileModTime = modTime.Time
	}
	return &meta, nil
}

// UpsertSyncMetadata inserts or updates sync metadata for a catalog file
func (r *CatalogRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	modTime := pgtype.Timestamptz{Time: metadata.FileModTime, Valid: !metadata.FileModTime.IsZero()}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO catalog_sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE SET
			last_sync_time = EXCLUDED.last_sync_time,
			file_hash = EXCLUDED.file_hash,
			file_mod_time = EXCLUDED.file_mod_time`,
		metadata.ConfigName, metadata.LastSyncTime, metadata.FileHash, modTime)
	if err != nil {
		return fmt.Errorf("failed to upsert sync metadata: %w", err)
	}
	return nil
}
