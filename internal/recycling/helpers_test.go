package recycling

import (
	"context"
	"fmt"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

func item(id string, value int, recipe map[string]int) domain.Item {
	return domain.Item{ID: id, Name: domain.Plain(id), Value: value, RecyclesInto: recipe}
}

// testCatalog is a small recipe graph:
//
//	radio  -> board x1, wire x2
//	board  -> wire x2, scrap x1
//	wire   -> scrap x1, plastic x1
//	widget -> scrap x2
func testCatalog() *domain.Catalog {
	items := []domain.Item{
		item("scrap", 40, nil),
		item("plastic", 10, nil),
		item("widget", 100, map[string]int{"scrap": 2}),
		item("wire", 60, map[string]int{"scrap": 1, "plastic": 1}),
		item("board", 200, map[string]int{"wire": 2, "scrap": 1}),
		item("radio", 500, map[string]int{"board": 1, "wire": 2}),
	}
	items[4].Rarity = domain.RarityRare
	items[5].Rarity = domain.RarityEpic
	c := domain.NewCatalog(items, nil, nil, nil)
	c.Version = "test"
	return c
}

// linearCatalog chains i00 -> i01 -> ... -> i<n>, each step yielding one unit; the last item is terminal
func linearCatalog(n int) *domain.Catalog {
	items := make([]domain.Item, 0, n+1)
	for i := 0; i < n; i++ {
		items = append(items, item(fmt.Sprintf("i%02d", i), 10, map[string]int{fmt.Sprintf("i%02d", i+1): 1}))
	}
	items = append(items, item(fmt.Sprintf("i%02d", n), 10, nil))
	return domain.NewCatalog(items, nil, nil, nil)
}

type staticCatalog struct {
	catalog *domain.Catalog
	err     error
	calls   int
}

func (s *staticCatalog) Snapshot(context.Context) (*domain.Catalog, error) {
	s.calls++
	return s.catalog, s.err
}
