package recycling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

func TestBuildChain_UnknownItem(t *testing.T) {
	assert.Nil(t, BuildChain("nope", testCatalog()))
}

func TestBuildChain_Terminal(t *testing.T) {
	node := BuildChain("scrap", testCatalog())

	require.NotNil(t, node)
	assert.True(t, node.IsLeaf())
	assert.NotNil(t, node.Children, "leaves serialize as an empty list")
	assert.Equal(t, "scrap", node.PathID)
	assert.Equal(t, 1, node.Quantity)
	assert.Equal(t, 0, node.Depth)
}

func TestBuildChain_QuantitiesDepthsAndPaths(t *testing.T) {
	root := BuildChainFrom("board", testCatalog(), 0, 3, "")
	require.NotNil(t, root)

	// children follow the sorted recipe keys: scrap, wire
	require.Len(t, root.Children, 2)
	scrap, wire := root.Children[0], root.Children[1]

	assert.Equal(t, "scrap", scrap.Item.ID)
	assert.Equal(t, 3, scrap.Quantity)
	assert.Equal(t, 1, scrap.Depth)
	assert.Equal(t, "board-scrap[0]", scrap.PathID)

	assert.Equal(t, "wire", wire.Item.ID)
	assert.Equal(t, 6, wire.Quantity)
	assert.Equal(t, "board-wire[1]", wire.PathID)

	require.Len(t, wire.Children, 2)
	assert.Equal(t, "board-wire[1]-plastic[0]", wire.Children[0].PathID)
	assert.Equal(t, 6, wire.Children[0].Quantity)
	assert.Equal(t, 2, wire.Children[0].Depth)
	assert.Equal(t, map[string]int{"scrap": 1, "plastic": 1}, wire.Produces)
}

func TestBuildChain_RepeatedItemsGetDistinctPaths(t *testing.T) {
	root := BuildChain("radio", testCatalog())
	require.NotNil(t, root)

	seen := make(map[string]bool)
	var walk func(n *domain.RecyclingNode)
	walk = func(n *domain.RecyclingNode) {
		assert.False(t, seen[n.PathID], "duplicate path id %s", n.PathID)
		seen[n.PathID] = true
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	// wire appears under radio directly and under board
	assert.True(t, seen["radio-wire[1]"])
	assert.True(t, seen["radio-board[0]-wire[1]"])
}

func TestBuildChainFrom_ParentPath(t *testing.T) {
	node := BuildChainFrom("wire", testCatalog(), 2, 1, "radio")

	require.NotNil(t, node)
	assert.Equal(t, "radio-wire", node.PathID)
	assert.Equal(t, 2, node.Depth)
	assert.Equal(t, 3, node.Children[0].Depth)
}

func TestBuildChain_SkipsUnknownOutputs(t *testing.T) {
	c := domain.NewCatalog([]domain.Item{
		item("scrap", 1, nil),
		item("junk", 10, map[string]int{"ghost": 1, "scrap": 2}),
	}, nil, nil, nil)

	root := BuildChain("junk", c)

	require.Len(t, root.Children, 1)
	assert.Equal(t, "scrap", root.Children[0].Item.ID)
}

func TestBuildChain_CycleGuard(t *testing.T) {
	c := domain.NewCatalog([]domain.Item{
		item("a", 10, map[string]int{"b": 1}),
		item("b", 10, map[string]int{"a": 2}),
	}, nil, nil, nil)

	root := BuildChain("a", c)

	require.NotNil(t, root)
	b := root.Children[0]
	require.Len(t, b.Children, 1)
	loop := b.Children[0]
	assert.Equal(t, "a", loop.Item.ID)
	assert.True(t, loop.Cycle)
	assert.True(t, loop.IsLeaf())
	assert.Equal(t, 2, loop.Quantity)
}

func TestBuildChain_ExpandsPastMaxChainDepth(t *testing.T) {
	depth := domain.MaxChainDepth + 8
	c := linearCatalog(depth)

	node := BuildChain("i00", c)
	for !node.IsLeaf() {
		require.Len(t, node.Children, 1)
		node = node.Children[0]
	}

	assert.Equal(t, fmt.Sprintf("i%02d", depth), node.Item.ID)
	assert.Equal(t, depth, node.Depth)
	assert.False(t, node.Cycle)

	m, ok := CalculateMetrics("i00", c)
	require.True(t, ok)
	assert.Equal(t, node.Depth, m.Depth)
}

func TestBuildChain_DeterministicAndConsistentWithTerminals(t *testing.T) {
	c := testCatalog()

	for _, it := range c.Items {
		t.Run(it.ID, func(t *testing.T) {
			first := BuildChain(it.ID, c)
			second := BuildChain(it.ID, c)
			require.NotNil(t, first)

			assert.Equal(t, first, second)
			assert.Equal(t, TerminalMaterials(it.ID, c, 1), CollectTerminals(first))
		})
	}
}
