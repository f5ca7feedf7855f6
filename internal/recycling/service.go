package recycling

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/logger"
	"github.com/osse101/RaidCompanion_Go/internal/metrics"
)

// CatalogSource provides the current catalog snapshot
type CatalogSource interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
}

// SourceOptions controls a reverse search
type SourceOptions struct {
	MaxDepth int
	Filter   PathFilter
	Sort     SortBy
}

// Service exposes the recycling engine over the live catalog
type Service interface {
	GetChain(ctx context.Context, itemID string, quantity int) (*domain.RecyclingNode, error)
	GetMetrics(ctx context.Context, itemID string) (*domain.RecyclingMetrics, error)
	GetMetricsTable(ctx context.Context) ([]domain.RecyclingMetrics, error)
	GetTerminals(ctx context.Context, itemID string, quantity int) (map[string]int, error)
	FindSources(ctx context.Context, targetID string, opts SourceOptions) ([]domain.RecyclingPath, error)
}

type service struct {
	catalog   CatalogSource
	pathCache *expirable.LRU[string, []domain.RecyclingPath]
}

// NewService creates a recycling service. Reverse-search results are cached per catalog
// version for pathCacheTTL; a zero TTL disables the cache.
func NewService(catalog CatalogSource, pathCacheSize int, pathCacheTTL time.Duration) Service {
	s := &service{catalog: catalog}
	if pathCacheTTL > 0 && pathCacheSize > 0 {
		s.pathCache = expirable.NewLRU[string, []domain.RecyclingPath](pathCacheSize, nil, pathCacheTTL)
	}
	return s
}

func (s *service) snapshot(ctx context.Context) (*domain.Catalog, error) {
	c, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

// GetChain returns the recycling tree for quantity units of itemID
func (s *service) GetChain(ctx context.Context, itemID string, quantity int) (*domain.RecyclingNode, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	root := BuildChainFrom(itemID, c, 0, quantity, "")
	if root == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	metrics.ChainsBuilt.Inc()
	logger.FromContext(ctx).Debug("Recycling chain built", "item", itemID, "quantity", quantity, "children", len(root.Children))
	return root, nil
}

// GetMetrics returns recycling metrics for a single item
func (s *service) GetMetrics(ctx context.Context, itemID string) (*domain.RecyclingMetrics, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	m, ok := CalculateMetrics(itemID, c)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	return &m, nil
}

// GetMetricsTable returns recycling metrics for every item
func (s *service) GetMetricsTable(ctx context.Context) ([]domain.RecyclingMetrics, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return CalculateAllMetrics(c), nil
}

// GetTerminals returns the terminal materials of fully recycling quantity units of itemID
func (s *service) GetTerminals(ctx context.Context, itemID string, quantity int) (map[string]int, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := c.Item(itemID); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	return TerminalMaterials(itemID, c, quantity), nil
}

// FindSources finds every item that recycles into targetID, filtered and sorted per opts
func (s *service) FindSources(ctx context.Context, targetID string, opts SourceOptions) ([]domain.RecyclingPath, error) {
	log := logger.FromContext(ctx)

	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := c.Item(targetID); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, targetID)
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = domain.DefaultPathMaxDepth
	}

	paths, cached := s.cachedPaths(c, targetID, maxDepth)
	if !cached {
		start := time.Now()
		paths = FindPaths(targetID, c, maxDepth)
		metrics.ReverseSearchDuration.Observe(time.Since(start).Seconds())
		s.storePaths(c, targetID, maxDepth, paths)
	}
	metrics.PathsFound.Observe(float64(len(paths)))

	result := FilterPaths(paths, opts.Filter)
	SortPaths(result, opts.Sort)

	log.Debug("Reverse recycling search",
		"target", targetID,
		"max_depth", maxDepth,
		"found", len(paths),
		"returned", len(result),
		"cached", cached)
	return result, nil
}

func pathCacheKey(c *domain.Catalog, targetID string, maxDepth int) string {
	return c.Version + "|" + targetID + "|" + strconv.Itoa(maxDepth)
}

func (s *service) cachedPaths(c *domain.Catalog, targetID string, maxDepth int) ([]domain.RecyclingPath, bool) {
	if s.pathCache == nil || c.Version == "" {
		return nil, false
	}
	paths, ok := s.pathCache.Get(pathCacheKey(c, targetID, maxDepth))
	if ok {
		metrics.CacheLookups.WithLabelValues(metrics.CacheRecyclingPaths, metrics.CacheResultHit).Inc()
	} else {
		metrics.CacheLookups.WithLabelValues(metrics.CacheRecyclingPaths, metrics.CacheResultMiss).Inc()
	}
	return paths, ok
}

func (s *service) storePaths(c *domain.Catalog, targetID string, maxDepth int, paths []domain.RecyclingPath) {
	if s.pathCache == nil || c.Version == "" {
		return
	}
	s.pathCache.Add(pathCacheKey(c, targetID, maxDepth), paths)
}
