package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/logger"
	"github.com/osse101/RaidCompanion_Go/internal/metrics"
	"github.com/osse101/RaidCompanion_Go/internal/repository"
)

// Provider serves immutable catalog snapshots, reloading from the reader once per cache window
type Provider struct {
	reader repository.CatalogReader
	cache  *expirable.LRU[string, *domain.Catalog]
	loadMu sync.Mutex
}

// NewProvider creates a provider caching snapshots for ttl
func NewProvider(reader repository.CatalogReader, ttl time.Duration) *Provider {
	return &Provider{
		reader: reader,
		cache:  expirable.NewLRU[string, *domain.Catalog](1, nil, ttl),
	}
}

// Snapshot returns the current catalog. Concurrent callers share a single reload.
func (p *Provider) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	if c, ok := p.cache.Get(snapshotKey); ok {
		metrics.CacheLookups.WithLabelValues(metrics.CacheCatalog, metrics.CacheResultHit).Inc()
		return c, nil
	}

	p.loadMu.Lock()
	defer p.loadMu.Unlock()

	if c, ok := p.cache.Get(snapshotKey); ok {
		metrics.CacheLookups.WithLabelValues(metrics.CacheCatalog, metrics.CacheResultHit).Inc()
		return c, nil
	}
	metrics.CacheLookups.WithLabelValues(metrics.CacheCatalog, metrics.CacheResultMiss).Inc()

	c, err := p.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	p.cache.Add(snapshotKey, c)

	logger.FromContext(ctx).Info(LogMsgSnapshotLoaded,
		"version", c.Version,
		"items", len(c.Items),
		"quests", len(c.Quests),
		"workstations", len(c.Workstations),
		"projects", len(c.Projects))
	return c, nil
}

// Invalidate drops the cached snapshot so the next call reloads
func (p *Provider) Invalidate() {
	p.cache.Purge()
}

func (p *Provider) load(ctx context.Context) (*domain.Catalog, error) {
	items, err := p.reader.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCollection, domain.CollectionItems, err)
	}
	quests, err := p.reader.GetAllQuests(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCollection, domain.CollectionQuests, err)
	}
	workstations, err := p.reader.GetAllWorkstations(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCollection, domain.CollectionWorkstations, err)
	}
	projects, err := p.reader.GetAllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCollection, domain.CollectionProjects, err)
	}

	c := domain.NewCatalog(items, quests, workstations, projects)
	version, err := fingerprint(items, quests, workstations, projects)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFingerprintBuild, err)
	}
	c.Version = version
	return c, nil
}

// fingerprint hashes the snapshot content so identical reloads keep the same version
func fingerprint(collections ...any) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, col := range collections {
		if err := enc.Encode(col); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil))[:16], nil
}
