package recycling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

func stepIDs(p domain.RecyclingPath) []string {
	ids := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		ids[i] = s.InputItem.ID
	}
	return ids
}

func TestFindPaths_SingleSource(t *testing.T) {
	c := domain.NewCatalog([]domain.Item{
		item("scrap", 40, nil),
		item("widget", 100, map[string]int{"scrap": 2}),
	}, nil, nil, nil)

	paths := FindPaths("scrap", c, 0)

	require.Len(t, paths, 1)
	p := paths[0]
	assert.Equal(t, "widget", p.SourceItem.ID)
	assert.Equal(t, "scrap", p.TargetMaterial.ID)
	assert.Equal(t, 1, p.TotalSteps)
	assert.Equal(t, 2, p.FinalQuantity)
	assert.Equal(t, 80, p.Efficiency)
	assert.Equal(t, 100, p.ValueCost)
	assert.Equal(t, 1, p.Steps[0].StepNumber)
}

func TestFindPaths_DiscoveryOrder(t *testing.T) {
	paths := FindPaths("scrap", testCatalog(), 0)

	want := []struct {
		steps      []string
		quantity   int
		efficiency int
	}{
		{[]string{"widget"}, 2, 80},
		{[]string{"wire"}, 1, 67},
		{[]string{"board"}, 1, 20},
		{[]string{"board", "wire"}, 2, 40},
		{[]string{"radio", "board"}, 1, 8},
		{[]string{"radio", "board", "wire"}, 2, 16},
		{[]string{"radio", "wire"}, 2, 16},
	}

	require.Len(t, paths, len(want))
	for i, w := range want {
		assert.Equal(t, w.steps, stepIDs(paths[i]), "path %d", i)
		assert.Equal(t, w.quantity, paths[i].FinalQuantity, "path %d", i)
		assert.Equal(t, w.efficiency, paths[i].Efficiency, "path %d", i)
		assert.Equal(t, len(w.steps), paths[i].TotalSteps, "path %d", i)
	}
}

func TestFindPaths_MaxDepth(t *testing.T) {
	paths := FindPaths("scrap", testCatalog(), 1)

	require.Len(t, paths, 3)
	for _, p := range paths {
		assert.Equal(t, 1, p.TotalSteps)
	}
}

func TestFindPaths_NoSources(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unknown target", "nope"},
		{"nothing yields it", "radio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := FindPaths(tt.target, testCatalog(), 0)
			assert.NotNil(t, paths)
			assert.Empty(t, paths)
		})
	}
}

func TestFindPaths_CyclicCatalogTerminates(t *testing.T) {
	c := domain.NewCatalog([]domain.Item{
		item("scrap", 10, nil),
		item("a", 10, map[string]int{"b": 1}),
		item("b", 10, map[string]int{"a": 1, "scrap": 1}),
	}, nil, nil, nil)

	paths := FindPaths("scrap", c, 0)

	require.Len(t, paths, 2)
	assert.Equal(t, []string{"a", "b"}, stepIDs(paths[0]))
	assert.Equal(t, []string{"b"}, stepIDs(paths[1]))
}

func TestFindPaths_WorthlessSource(t *testing.T) {
	c := domain.NewCatalog([]domain.Item{
		item("scrap", 10, nil),
		item("freebie", 0, map[string]int{"scrap": 3}),
	}, nil, nil, nil)

	paths := FindPaths("scrap", c, 0)

	require.Len(t, paths, 1)
	assert.Equal(t, 0, paths[0].Efficiency)
	assert.Equal(t, 3, paths[0].FinalQuantity)
}
