package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/logger"
	"github.com/osse101/RaidCompanion_Go/internal/metrics"
	"github.com/osse101/RaidCompanion_Go/internal/repository"
)

// CollectionResult counts the outcome of syncing one collection
type CollectionResult struct {
	Inserted  int  `json:"inserted"`
	Updated   int  `json:"updated"`
	Skipped   int  `json:"skipped"`
	Removed   int  `json:"removed"`
	Unchanged bool `json:"unchanged"`
}

// SyncResult contains the result of syncing every collection
type SyncResult struct {
	Collections map[string]*CollectionResult `json:"collections"`
}

// Changed reports whether any row was written or removed
func (r *SyncResult) Changed() bool {
	for _, c := range r.Collections {
		if c.Inserted > 0 || c.Updated > 0 || c.Removed > 0 {
			return true
		}
	}
	return false
}

// SyncToDatabase syncs the bundle idempotently. A collection whose file hash matches the
// last recorded sync is skipped entirely; otherwise rows are upserted when their content
// differs and rows missing from the file are removed.
func (l *loader) SyncToDatabase(ctx context.Context, b *Bundle, repo repository.Catalog) (*SyncResult, error) {
	result := &SyncResult{Collections: make(map[string]*CollectionResult, len(Collections))}

	for _, collection := range Collections {
		var (
			res *CollectionResult
			err error
		)

		if !hasChanged(ctx, repo, collection, b.Hashes[collection]) {
			logger.FromContext(ctx).Info(LogMsgCollectionUnchanged, "collection", collection)
			metrics.CatalogSyncs.WithLabelValues(collection, metrics.SyncResultSkipped).Inc()
			result.Collections[collection] = &CollectionResult{Unchanged: true}
			continue
		}

		switch collection {
		case domain.CollectionItems:
			res, err = syncCollection(ctx, collection, b.Items, repo.GetAllItems, repo.UpsertItem,
				func(i *domain.Item) string { return i.ID }, repo)
		case domain.CollectionQuests:
			res, err = syncCollection(ctx, collection, b.Quests, repo.GetAllQuests, repo.UpsertQuest,
				func(q *domain.Quest) string { return q.ID }, repo)
		case domain.CollectionWorkstations:
			res, err = syncCollection(ctx, collection, b.Workstations, repo.GetAllWorkstations, repo.UpsertWorkstation,
				func(w *domain.Workstation) string { return w.ID }, repo)
		case domain.CollectionProjects:
			res, err = syncCollection(ctx, collection, b.Projects, repo.GetAllProjects, repo.UpsertProject,
				func(p *domain.Project) string { return p.ID }, repo)
		}
		if err != nil {
			metrics.CatalogSyncs.WithLabelValues(collection, metrics.SyncResultFailed).Inc()
			return nil, err
		}
		result.Collections[collection] = res

		if err := repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
			ConfigName:   fileName(collection),
			LastSyncTime: time.Now(),
			FileHash:     b.Hashes[collection],
		}); err != nil {
			logger.FromContext(ctx).Warn(LogMsgUpdateMetadata, "collection", collection, "error", err)
		}
	}

	return result, nil
}

// hasChanged treats a missing or unreadable metadata row as a first sync
func hasChanged(ctx context.Context, repo repository.Catalog, collection, hash string) bool {
	if hash == "" {
		return true
	}
	meta, err := repo.GetSyncMetadata(ctx, fileName(collection))
	if err != nil || meta == nil {
		return true
	}
	return meta.FileHash != hash
}

func syncCollection[T any](
	ctx context.Context,
	collection string,
	defs []T,
	getAll func(context.Context) ([]T, error),
	upsert func(context.Context, *T) error,
	idOf func(*T) string,
	repo repository.Catalog,
) (*CollectionResult, error) {
	log := logger.FromContext(ctx)

	existing, err := getAll(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadExisting, collection, err)
	}
	byID := make(map[string]*T, len(existing))
	for i := range existing {
		byID[idOf(&existing[i])] = &existing[i]
	}

	res := &CollectionResult{}
	keep := make([]string, 0, len(defs))
	for i := range defs {
		def := &defs[i]
		id := idOf(def)
		keep = append(keep, id)

		current, found := byID[id]
		if found && sameContent(current, def) {
			res.Skipped++
			continue
		}
		if err := upsert(ctx, def); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertFailed, collection, id, err)
		}
		if found {
			res.Updated++
			metrics.CatalogSyncs.WithLabelValues(collection, metrics.SyncResultUpdated).Inc()
		} else {
			res.Inserted++
			metrics.CatalogSyncs.WithLabelValues(collection, metrics.SyncResultInserted).Inc()
		}
	}

	removed, err := repo.DeleteMissing(ctx, collection, keep)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteStale, collection, err)
	}
	res.Removed = removed

	log.Info(LogMsgCollectionSynced,
		"collection", collection,
		"inserted", res.Inserted,
		"updated", res.Updated,
		"skipped", res.Skipped,
		"removed", res.Removed)
	return res, nil
}

// sameContent compares canonical JSON encodings
func sameContent(a, b any) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(ja, jb)
}
