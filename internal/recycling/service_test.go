package recycling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

func newTestService(src *staticCatalog) Service {
	return NewService(src, 16, time.Minute)
}

func TestService_GetChain(t *testing.T) {
	svc := newTestService(&staticCatalog{catalog: testCatalog()})
	ctx := context.Background()

	root, err := svc.GetChain(ctx, "widget", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, root.Quantity)
	assert.Equal(t, 8, root.Children[0].Quantity)

	_, err = svc.GetChain(ctx, "nope", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = svc.GetChain(ctx, "widget", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_GetMetrics(t *testing.T) {
	svc := newTestService(&staticCatalog{catalog: testCatalog()})
	ctx := context.Background()

	m, err := svc.GetMetrics(ctx, "widget")
	require.NoError(t, err)
	assert.Equal(t, 80, m.Efficiency)

	_, err = svc.GetMetrics(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	table, err := svc.GetMetricsTable(ctx)
	require.NoError(t, err)
	assert.Len(t, table, 6)
}

func TestService_GetTerminals(t *testing.T) {
	svc := newTestService(&staticCatalog{catalog: testCatalog()})
	ctx := context.Background()

	got, err := svc.GetTerminals(ctx, "board", 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"scrap": 6, "plastic": 4}, got)

	_, err = svc.GetTerminals(ctx, "nope", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = svc.GetTerminals(ctx, "board", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_FindSources(t *testing.T) {
	svc := newTestService(&staticCatalog{catalog: testCatalog()})
	ctx := context.Background()

	paths, err := svc.FindSources(ctx, "scrap", SourceOptions{
		Filter: PathFilter{MinRarity: domain.RarityRare},
		Sort:   SortByValue,
	})
	require.NoError(t, err)
	require.Len(t, paths, 5)
	assert.Equal(t, "board", paths[0].SourceItem.ID)
	assert.Equal(t, "radio", paths[4].SourceItem.ID)

	paths, err = svc.FindSources(ctx, "scrap", SourceOptions{MaxDepth: 1})
	require.NoError(t, err)
	assert.Len(t, paths, 3)

	_, err = svc.FindSources(ctx, "nope", SourceOptions{})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestService_FindSourcesCachesPerVersion(t *testing.T) {
	small := domain.NewCatalog([]domain.Item{
		item("scrap", 40, nil),
		item("widget", 100, map[string]int{"scrap": 2}),
	}, nil, nil, nil)
	small.Version = "test"

	src := &staticCatalog{catalog: small}
	svc := newTestService(src)
	ctx := context.Background()

	paths, err := svc.FindSources(ctx, "scrap", SourceOptions{})
	require.NoError(t, err)
	require.Len(t, paths, 1)

	// same version: the cached result is served
	src.catalog = testCatalog()
	paths, err = svc.FindSources(ctx, "scrap", SourceOptions{})
	require.NoError(t, err)
	assert.Len(t, paths, 1)

	// new version: searched again
	src.catalog.Version = "test-2"
	paths, err = svc.FindSources(ctx, "scrap", SourceOptions{})
	require.NoError(t, err)
	assert.Len(t, paths, 7)
	assert.Equal(t, 3, src.calls)
}

func TestService_FindSourcesWithoutCache(t *testing.T) {
	src := &staticCatalog{catalog: testCatalog()}
	svc := NewService(src, 16, 0)
	ctx := context.Background()

	_, err := svc.FindSources(ctx, "scrap", SourceOptions{})
	require.NoError(t, err)

	src.catalog = domain.NewCatalog([]domain.Item{
		item("scrap", 40, nil),
		item("widget", 100, map[string]int{"scrap": 2}),
	}, nil, nil, nil)
	src.catalog.Version = "test"

	paths, err := svc.FindSources(ctx, "scrap", SourceOptions{})
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestService_CatalogFailure(t *testing.T) {
	boom := errors.New("catalog down")
	svc := newTestService(&staticCatalog{err: boom})
	ctx := context.Background()

	_, err := svc.GetChain(ctx, "widget", 1)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to load catalog")

	_, err = svc.GetMetricsTable(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = svc.FindSources(ctx, "scrap", SourceOptions{})
	assert.ErrorIs(t, err, boom)
}
