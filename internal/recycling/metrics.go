package recycling

import (
	"math"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// CalculateMetrics derives depth, efficiency and value metrics for one item.
// The second return value is false when the item is not in the catalog.
func CalculateMetrics(itemID string, catalog *domain.Catalog) (domain.RecyclingMetrics, bool) {
	item, ok := catalog.Item(itemID)
	if !ok {
		return domain.RecyclingMetrics{ItemID: itemID}, false
	}

	outputValue := immediateOutputValue(item, catalog)

	totalValue := item.Value
	if !item.IsTerminal() {
		totalValue = outputValue
	}

	return domain.RecyclingMetrics{
		ItemID:        item.ID,
		Depth:         itemDepth(item, catalog, make(map[string]bool)),
		Efficiency:    efficiency(outputValue, item.Value, !item.IsTerminal()),
		IsTerminal:    item.IsTerminal(),
		TotalValue:    totalValue,
		CanBeRecycled: !item.IsTerminal(),
	}, true
}

// CalculateAllMetrics computes metrics for every catalog item in catalog order.
// Each item is computed independently.
func CalculateAllMetrics(catalog *domain.Catalog) []domain.RecyclingMetrics {
	if catalog == nil {
		return []domain.RecyclingMetrics{}
	}
	all := make([]domain.RecyclingMetrics, 0, len(catalog.Items))
	for i := range catalog.Items {
		m, _ := CalculateMetrics(catalog.Items[i].ID, catalog)
		all = append(all, m)
	}
	return all
}

// itemDepth is 0 for terminal items and 1 + the deepest direct output otherwise.
// Outputs missing from the catalog or already on the current path count as depth 0.
func itemDepth(item *domain.Item, catalog *domain.Catalog, ancestors map[string]bool) int {
	if item.IsTerminal() {
		return 0
	}

	ancestors[item.ID] = true
	defer delete(ancestors, item.ID)

	deepest := 0
	for outputID := range item.RecyclesInto {
		child, ok := catalog.Item(outputID)
		if !ok || ancestors[outputID] {
			continue
		}
		if d := itemDepth(child, catalog, ancestors); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}

// immediateOutputValue sums value × quantity over the direct recipe outputs
func immediateOutputValue(item *domain.Item, catalog *domain.Catalog) int {
	total := 0
	for outputID, qty := range item.RecyclesInto {
		if child, ok := catalog.Item(outputID); ok {
			total += child.Value * qty
		}
	}
	return total
}

// efficiency returns round(output / input × 100), or 0 when there is no recipe or the input is worthless
func efficiency(outputValue, inputValue int, hasRecipe bool) int {
	if !hasRecipe || inputValue == 0 {
		return 0
	}
	return int(math.Round(float64(outputValue) / float64(inputValue) * 100))
}
