package recycling

import (
	"sort"
	"strconv"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// BuildChain builds the recycling tree for a single unit of itemID.
// Returns nil when the item is not in the catalog.
func BuildChain(itemID string, catalog *domain.Catalog) *domain.RecyclingNode {
	return BuildChainFrom(itemID, catalog, 0, 1, "")
}

// BuildChainFrom builds the recycling tree rooted at itemID with the given starting depth,
// quantity and parent path. Each child carries parent quantity × recipe quantity and a
// path id of the form "<parent>-<child>[<index>]", so repeated items never collide.
//
// An item that already appears among its own ancestors is emitted as a leaf with Cycle set.
func BuildChainFrom(itemID string, catalog *domain.Catalog, depth, quantity int, parentPath string) *domain.RecyclingNode {
	pathID := itemID
	if parentPath != "" {
		pathID = parentPath + "-" + itemID
	}
	return buildNode(itemID, catalog, depth, quantity, pathID, make(map[string]bool))
}

func buildNode(itemID string, catalog *domain.Catalog, depth, quantity int, pathID string, ancestors map[string]bool) *domain.RecyclingNode {
	item, ok := catalog.Item(itemID)
	if !ok {
		return nil
	}

	node := &domain.RecyclingNode{
		Item:     item,
		Quantity: quantity,
		Depth:    depth,
		Produces: producesOf(item),
		Children: []*domain.RecyclingNode{},
		PathID:   pathID,
	}

	if ancestors[itemID] {
		node.Cycle = true
		return node
	}

	ancestors[itemID] = true
	defer delete(ancestors, itemID)

	for i, outputID := range sortedOutputs(item.RecyclesInto) {
		childPath := pathID + "-" + outputID + "[" + strconv.Itoa(i) + "]"
		child := buildNode(outputID, catalog, depth+1, quantity*item.RecyclesInto[outputID], childPath, ancestors)
		if child != nil {
			node.Children = append(node.Children, child)
		}
	}

	return node
}

// sortedOutputs returns recipe output ids in a stable order
func sortedOutputs(recipe map[string]int) []string {
	ids := make([]string, 0, len(recipe))
	for id := range recipe {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func producesOf(item *domain.Item) map[string]int {
	produces := make(map[string]int, len(item.RecyclesInto))
	for id, qty := range item.RecyclesInto {
		produces[id] = qty
	}
	return produces
}
