package recycling

import (
	"fmt"
	"sort"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// SortBy selects the ordering applied by SortPaths
type SortBy string

const (
	SortByEfficiency SortBy = "efficiency" // highest first
	SortByValue      SortBy = "value"      // cheapest source first
	SortBySteps      SortBy = "steps"      // shortest first
	SortByQuantity   SortBy = "quantity"   // largest yield first
)

// ParseSortBy validates a sort key, defaulting to efficiency when empty
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case "":
		return SortByEfficiency, nil
	case SortByEfficiency, SortByValue, SortBySteps, SortByQuantity:
		return SortBy(s), nil
	default:
		return "", fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, s)
	}
}

// PathFilter narrows reverse-search results
type PathFilter struct {
	MinRarity     domain.Rarity
	MinEfficiency int
}

// FilterPaths keeps paths whose source meets the rarity floor and whose efficiency meets the minimum
func FilterPaths(paths []domain.RecyclingPath, filter PathFilter) []domain.RecyclingPath {
	kept := make([]domain.RecyclingPath, 0, len(paths))
	for _, p := range paths {
		if !p.SourceItem.Rarity.AtLeast(filter.MinRarity) {
			continue
		}
		if p.Efficiency < filter.MinEfficiency {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// SortPaths orders paths in place. Ties keep discovery order.
func SortPaths(paths []domain.RecyclingPath, by SortBy) {
	var less func(a, b domain.RecyclingPath) bool
	switch by {
	case SortByValue:
		less = func(a, b domain.RecyclingPath) bool { return a.ValueCost < b.ValueCost }
	case SortBySteps:
		less = func(a, b domain.RecyclingPath) bool { return a.TotalSteps < b.TotalSteps }
	case SortByQuantity:
		less = func(a, b domain.RecyclingPath) bool { return a.FinalQuantity > b.FinalQuantity }
	default:
		less = func(a, b domain.RecyclingPath) bool { return a.Efficiency > b.Efficiency }
	}
	sort.SliceStable(paths, func(i, j int) bool { return less(paths[i], paths[j]) })
}
