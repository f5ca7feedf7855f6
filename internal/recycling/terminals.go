package recycling

import "github.com/osse101/RaidCompanion_Go/internal/domain"

// TerminalMaterials returns the terminal materials obtained by fully recycling quantity
// units of itemID, keyed by item id. Unknown items yield an empty map.
func TerminalMaterials(itemID string, catalog *domain.Catalog, quantity int) map[string]int {
	root := BuildChainFrom(itemID, catalog, 0, quantity, "")
	return CollectTerminals(root)
}

// CollectTerminals sums the quantities of every leaf in the tree. The same material reached
// through different branches is added up; internal nodes and cycle leaves do not contribute.
func CollectTerminals(root *domain.RecyclingNode) map[string]int {
	totals := make(map[string]int)
	if root == nil {
		return totals
	}

	var walk func(n *domain.RecyclingNode)
	walk = func(n *domain.RecyclingNode) {
		if n.Cycle {
			return
		}
		if n.IsLeaf() {
			totals[n.Item.ID] += n.Quantity
			return
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)

	return totals
}
