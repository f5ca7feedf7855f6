package catalog

import (
	"fmt"
	"slices"
	"sort"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/recycling"
)

// Validate checks structural rules and returns referential-integrity warnings.
// Structural problems (empty or duplicate ids, negative values) fail the load; dangling
// references only produce warnings since the engines skip unknown ids.
func (l *loader) Validate(b *Bundle) ([]string, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: bundle is nil", ErrInvalidCatalog)
	}

	if err := validateItems(b.Items); err != nil {
		return nil, err
	}
	if err := checkIDs(domain.CollectionQuests, len(b.Quests), func(i int) string { return b.Quests[i].ID }); err != nil {
		return nil, err
	}
	if err := checkIDs(domain.CollectionWorkstations, len(b.Workstations), func(i int) string { return b.Workstations[i].ID }); err != nil {
		return nil, err
	}
	for i := range b.Workstations {
		ws := &b.Workstations[i]
		if ws.MaxLevel > 0 && len(ws.Levels) > ws.MaxLevel {
			return nil, fmt.Errorf(ErrFmtLevelsExceeded, ErrInvalidCatalog, ws.ID, len(ws.Levels), ws.MaxLevel)
		}
	}
	if err := checkIDs(domain.CollectionProjects, len(b.Projects), func(i int) string { return b.Projects[i].ID }); err != nil {
		return nil, err
	}

	c := domain.NewCatalog(b.Items, b.Quests, b.Workstations, b.Projects)
	var warnings []string
	warnings = append(warnings, itemWarnings(c)...)
	warnings = append(warnings, questWarnings(c)...)
	warnings = append(warnings, requirementWarnings(c)...)
	return warnings, nil
}

func checkIDs(collection string, n int, id func(int) string) error {
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v == "" {
			return fmt.Errorf(ErrFmtEmptyID, ErrInvalidCatalog, collection, i)
		}
		if seen[v] {
			return fmt.Errorf(ErrFmtDuplicateID, ErrInvalidCatalog, collection, v)
		}
		seen[v] = true
	}
	return nil
}

func validateItems(items []domain.Item) error {
	if err := checkIDs(domain.CollectionItems, len(items), func(i int) string { return items[i].ID }); err != nil {
		return err
	}
	for i := range items {
		item := &items[i]
		if item.Value < 0 {
			return fmt.Errorf(ErrFmtNegativeValue, ErrInvalidCatalog, item.ID)
		}
		if !item.Rarity.IsValid() {
			return fmt.Errorf(ErrFmtBadRarity, ErrInvalidCatalog, item.ID, item.Rarity)
		}
		for out, qty := range item.RecyclesInto {
			if qty <= 0 {
				return fmt.Errorf(ErrFmtBadRecipeQty, ErrInvalidCatalog, item.ID, out, qty)
			}
		}
	}
	return nil
}

func itemWarnings(c *domain.Catalog) []string {
	var warnings []string
	for i := range c.Items {
		item := &c.Items[i]
		outputs := make([]string, 0, len(item.RecyclesInto))
		for out := range item.RecyclesInto {
			outputs = append(outputs, out)
		}
		sort.Strings(outputs)
		for _, out := range outputs {
			if _, ok := c.Item(out); !ok {
				warnings = append(warnings, fmt.Sprintf(WarnFmtUnknownOutput, item.ID, out))
			}
		}
		if hasCycle(recycling.BuildChain(item.ID, c)) {
			warnings = append(warnings, fmt.Sprintf(WarnFmtRecipeCycle, item.ID))
		}
	}
	return warnings
}

func hasCycle(node *domain.RecyclingNode) bool {
	if node == nil {
		return false
	}
	if node.Cycle {
		return true
	}
	for _, child := range node.Children {
		if hasCycle(child) {
			return true
		}
	}
	return false
}

func questWarnings(c *domain.Catalog) []string {
	var warnings []string
	for i := range c.Quests {
		q := &c.Quests[i]
		for _, iq := range append(append([]domain.ItemQuantity{}, q.RequiredItems...), q.RewardItems...) {
			if _, ok := c.Item(iq.ItemID); !ok {
				warnings = append(warnings, fmt.Sprintf(WarnFmtUnknownQuestItem, q.ID, iq.ItemID))
			}
		}
		for _, prev := range q.PreviousQuestIDs {
			if _, ok := c.Quest(prev); !ok {
				warnings = append(warnings, fmt.Sprintf(WarnFmtUnknownQuestLink, q.ID, prev))
			}
		}
		for _, next := range q.NextQuestIDs {
			nq, ok := c.Quest(next)
			if !ok {
				warnings = append(warnings, fmt.Sprintf(WarnFmtUnknownQuestLink, q.ID, next))
				continue
			}
			if !slices.Contains(nq.PreviousQuestIDs, q.ID) {
				warnings = append(warnings, fmt.Sprintf(WarnFmtAsymmetricQuestDAG, q.ID, next, next))
			}
		}
	}
	return warnings
}

func requirementWarnings(c *domain.Catalog) []string {
	var warnings []string
	for i := range c.Workstations {
		ws := &c.Workstations[i]
		for _, level := range ws.Levels {
			for _, iq := range level.Requirements {
				if _, ok := c.Item(iq.ItemID); !ok {
					warnings = append(warnings, fmt.Sprintf(WarnFmtUnknownLevelItem, ws.ID, level.Level, iq.ItemID))
				}
			}
		}
	}
	for i := range c.Projects {
		p := &c.Projects[i]
		for _, phase := range p.Phases {
			for _, iq := range phase.RequiredItems {
				if _, ok := c.Item(iq.ItemID); !ok {
					warnings = append(warnings, fmt.Sprintf(WarnFmtUnknownPhaseItem, p.ID, phase.Phase, iq.ItemID))
				}
			}
		}
	}
	return warnings
}
