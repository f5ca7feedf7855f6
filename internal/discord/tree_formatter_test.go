package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

func node(id, name string, qty int, children ...*domain.RecyclingNode) *domain.RecyclingNode {
	return &domain.RecyclingNode{
		Item:     &domain.Item{ID: id, Name: domain.Plain(name)},
		Quantity: qty,
		Children: children,
	}
}

func TestFormatChainTree(t *testing.T) {
	root := node("radio", "Radio", 1,
		node("ec", "Electrical Components", 1,
			node("wires", "Wires", 2),
			node("plastic", "Plastic Parts", 2)),
		node("wires", "Wires", 1))

	got := formatChainTree(root, "en")

	want := strings.Join([]string{
		"1x **Radio**",
		"├─ 1x **Electrical Components**",
		"│  ├─ 2x **Wires**",
		"│  └─ 2x **Plastic Parts**",
		"└─ 1x **Wires**",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatChainTree_MarksCycles(t *testing.T) {
	loop := node("a", "Alpha", 1)
	loop.Cycle = true
	root := node("a", "Alpha", 1, node("b", "Beta", 1, loop))

	assert.Contains(t, formatChainTree(root, "en"), "1x **Alpha** ↺")
}

func TestFormatMaterials(t *testing.T) {
	got := formatMaterials(map[string]int{"b": 2, "a": 2, "c": 5}, map[string]string{"a": "Alpha", "c": "Gamma"})

	assert.Equal(t, "• 5x Gamma\n• 2x Alpha\n• 2x b\n", got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
	assert.Equal(t, "äö…", truncate("äöüß", 3))
}
