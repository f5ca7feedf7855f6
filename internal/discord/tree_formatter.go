package discord

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// formatChainTree renders a recycling tree as an indented list
func formatChainTree(root *domain.RecyclingNode, lang string) string {
	var sb strings.Builder
	writeNode(&sb, root, lang, "", true, true)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *domain.RecyclingNode, lang, prefix string, last, root bool) {
	line := fmt.Sprintf("%dx **%s**", n.Quantity, n.Item.Name.Resolve(lang))
	if n.Cycle {
		line += " ↺"
	}

	childPrefix := prefix
	if root {
		sb.WriteString(line + "\n")
	} else {
		branch, pad := "├─ ", "│  "
		if last {
			branch, pad = "└─ ", "   "
		}
		sb.WriteString(prefix + branch + line + "\n")
		childPrefix = prefix + pad
	}

	for idx, child := range n.Children {
		writeNode(sb, child, lang, childPrefix, idx == len(n.Children)-1, false)
	}
}

// chainNames collects the display name of every item in the tree
func chainNames(root *domain.RecyclingNode, lang string) map[string]string {
	names := make(map[string]string)
	var walk func(*domain.RecyclingNode)
	walk = func(n *domain.RecyclingNode) {
		names[n.Item.ID] = n.Item.Name.Resolve(lang)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return names
}

// formatMaterials renders id -> quantity as a sorted list, largest quantity first
func formatMaterials(materials map[string]int, names map[string]string) string {
	ids := slices.Collect(maps.Keys(materials))
	slices.SortFunc(ids, func(a, b string) int {
		if materials[a] != materials[b] {
			return materials[b] - materials[a]
		}
		return strings.Compare(a, b)
	})

	var sb strings.Builder
	for _, id := range ids {
		name := names[id]
		if name == "" {
			name = id
		}
		fmt.Fprintf(&sb, "• %dx %s\n", materials[id], name)
	}
	return sb.String()
}

// formatPaths renders reverse-search results, at most limit of them
func formatPaths(paths []domain.RecyclingPath, lang string, limit int) string {
	var sb strings.Builder
	for idx, p := range paths {
		if idx == limit {
			fmt.Fprintf(&sb, "…and %d more", len(paths)-limit)
			break
		}
		route := make([]string, 0, len(p.Steps)+1)
		for _, step := range p.Steps {
			route = append(route, step.InputItem.Name.Resolve(lang))
		}
		route = append(route, p.TargetMaterial.Name.Resolve(lang))

		fmt.Fprintf(&sb, "**%s** → %dx (%d%% efficiency, %d steps, value %d)\n%s\n",
			p.SourceItem.Name.Resolve(lang), p.FinalQuantity, p.Efficiency, p.TotalSteps, p.ValueCost,
			strings.Join(route, " → "))
	}
	return sb.String()
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
