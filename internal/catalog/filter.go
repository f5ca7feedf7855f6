package catalog

import (
	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// ItemFilter narrows an item listing; zero fields match everything
type ItemFilter struct {
	Type      string
	Rarity    domain.Rarity
	MinRarity domain.Rarity
	Terminal  *bool
}

// FilterItems returns the items matching f in catalog order
func FilterItems(items []domain.Item, f ItemFilter) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for i := range items {
		item := &items[i]
		if f.Type != "" && item.Type != f.Type {
			continue
		}
		if f.Rarity != "" && item.Rarity != f.Rarity {
			continue
		}
		if !item.Rarity.AtLeast(f.MinRarity) {
			continue
		}
		if f.Terminal != nil && item.IsTerminal() != *f.Terminal {
			continue
		}
		out = append(out, *item)
	}
	return out
}
