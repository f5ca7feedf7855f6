package recycling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

func TestCalculateMetrics(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name string
		id   string
		want domain.RecyclingMetrics
	}{
		{
			name: "terminal item",
			id:   "scrap",
			want: domain.RecyclingMetrics{ItemID: "scrap", Depth: 0, Efficiency: 0, IsTerminal: true, TotalValue: 40},
		},
		{
			name: "single recipe",
			id:   "widget",
			want: domain.RecyclingMetrics{ItemID: "widget", Depth: 1, Efficiency: 80, TotalValue: 80, CanBeRecycled: true},
		},
		{
			// 2 wire (120) + 1 scrap (40) against 200
			name: "nested recipe",
			id:   "board",
			want: domain.RecyclingMetrics{ItemID: "board", Depth: 2, Efficiency: 80, TotalValue: 160, CanBeRecycled: true},
		},
		{
			// board (200) + 2 wire (120) against 500
			name: "deepest branch wins",
			id:   "radio",
			want: domain.RecyclingMetrics{ItemID: "radio", Depth: 3, Efficiency: 64, TotalValue: 320, CanBeRecycled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CalculateMetrics(tt.id, c)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateMetrics_ZeroValueItem(t *testing.T) {
	c := domain.NewCatalog([]domain.Item{
		item("scrap", 40, nil),
		item("freebie", 0, map[string]int{"scrap": 1}),
	}, nil, nil, nil)

	m, ok := CalculateMetrics("freebie", c)

	assert.True(t, ok)
	assert.Equal(t, 0, m.Efficiency)
	assert.Equal(t, 40, m.TotalValue)
}

func TestCalculateMetrics_Unknown(t *testing.T) {
	m, ok := CalculateMetrics("nope", testCatalog())

	assert.False(t, ok)
	assert.Equal(t, "nope", m.ItemID)
}

func TestCalculateMetrics_CyclicCatalogTerminates(t *testing.T) {
	c := domain.NewCatalog([]domain.Item{
		item("a", 10, map[string]int{"b": 1}),
		item("b", 10, map[string]int{"a": 1}),
	}, nil, nil, nil)

	m, ok := CalculateMetrics("a", c)

	assert.True(t, ok)
	assert.Equal(t, 2, m.Depth)
}

func TestEfficiencyRounding(t *testing.T) {
	assert.Equal(t, 67, efficiency(2, 3, true))
	assert.Equal(t, 33, efficiency(1, 3, true))
	assert.Equal(t, 50, efficiency(1, 2, true))
	assert.Equal(t, 0, efficiency(100, 0, true))
	assert.Equal(t, 0, efficiency(100, 50, false))
}

func TestCalculateAllMetrics(t *testing.T) {
	table := CalculateAllMetrics(testCatalog())

	assert.Len(t, table, 6)
	assert.Equal(t, "scrap", table[0].ItemID)
	assert.Equal(t, "radio", table[5].ItemID)
	assert.Empty(t, CalculateAllMetrics(nil))
}
