package calculator

import (
	"sort"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// Selection is what the user wants to build or turn in
type Selection struct {
	QuestIDs          []string              `json:"quest_ids"`
	WorkstationLevels []string              `json:"workstation_levels"`
	ProjectPhases     []string              `json:"project_phases"`
	Custom            []domain.ItemQuantity `json:"custom" validate:"dive"`
}

// Requirement is a summed item quantity within a category
type Requirement struct {
	ItemID   string `json:"item_id"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// Result holds the aggregated requirements of a selection
type Result struct {
	// Categories maps category -> item id -> requirement
	Categories map[string]map[string]Requirement `json:"categories"`
	// CategoryValues totals project requirements expressed as a category value
	CategoryValues map[string]int `json:"category_values"`
	// Skipped lists selection keys and ids that no longer resolve against the catalog
	Skipped []string `json:"skipped,omitempty"`
}

func newResult() *Result {
	return &Result{
		Categories:     make(map[string]map[string]Requirement),
		CategoryValues: make(map[string]int),
	}
}

func (r *Result) add(category, itemID string, quantity int) {
	if category == "" {
		category = domain.CategoryUncategorized
	}
	bucket, ok := r.Categories[category]
	if !ok {
		bucket = make(map[string]Requirement)
		r.Categories[category] = bucket
	}
	req := bucket[itemID]
	req.ItemID = itemID
	req.Category = category
	req.Quantity += quantity
	bucket[itemID] = req
}

// addCatalogItem files the contribution under the item's type; unknown ids are dropped
func (r *Result) addCatalogItem(c *domain.Catalog, iq domain.ItemQuantity) {
	item, ok := c.Item(iq.ItemID)
	if !ok {
		r.Skipped = append(r.Skipped, iq.ItemID)
		return
	}
	r.add(item.Type, item.ID, iq.Quantity)
}

// Calculate aggregates every item required by the selection.
// Stale keys and unknown ids are skipped individually and reported in Skipped.
func Calculate(sel Selection, c *domain.Catalog) *Result {
	r := newResult()

	for _, questID := range sel.QuestIDs {
		q, ok := c.Quest(questID)
		if !ok {
			r.Skipped = append(r.Skipped, questID)
			continue
		}
		for _, iq := range q.RequiredItems {
			r.addCatalogItem(c, iq)
		}
	}

	for _, key := range sel.WorkstationLevels {
		level, ok := workstationLevel(c, key)
		if !ok {
			r.Skipped = append(r.Skipped, key)
			continue
		}
		for _, iq := range level.Requirements {
			r.addCatalogItem(c, iq)
		}
	}

	for _, key := range sel.ProjectPhases {
		phase, ok := projectPhase(c, key)
		if !ok {
			r.Skipped = append(r.Skipped, key)
			continue
		}
		for _, iq := range phase.RequiredItems {
			r.addCatalogItem(c, iq)
		}
		for _, cq := range phase.RequiredCategories {
			r.CategoryValues[cq.Category] += cq.ValueRequired
		}
	}

	for _, iq := range sel.Custom {
		if item, ok := c.Item(iq.ItemID); ok {
			r.add(item.Type, item.ID, iq.Quantity)
			continue
		}
		r.add(domain.CategoryCustom, iq.ItemID, iq.Quantity)
	}

	return r
}

func workstationLevel(c *domain.Catalog, key string) (*domain.WorkstationLevel, bool) {
	id, index, err := ParseWorkstationKey(key)
	if err != nil {
		return nil, false
	}
	ws, ok := c.Workstation(id)
	if !ok || index >= len(ws.Levels) {
		return nil, false
	}
	return &ws.Levels[index], true
}

func projectPhase(c *domain.Catalog, key string) (*domain.ProjectPhase, bool) {
	id, number, err := ParseProjectKey(key)
	if err != nil {
		return nil, false
	}
	p, ok := c.Project(id)
	if !ok {
		return nil, false
	}
	for i := range p.Phases {
		if p.Phases[i].Phase == number {
			return &p.Phases[i], true
		}
	}
	return nil, false
}

// Flatten lists every requirement ordered by category then item id
func (r *Result) Flatten() []Requirement {
	var out []Requirement
	for _, bucket := range r.Categories {
		for _, req := range bucket {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out
}

// Total returns the summed quantity of itemID across all categories
func (r *Result) Total(itemID string) int {
	total := 0
	for _, bucket := range r.Categories {
		total += bucket[itemID].Quantity
	}
	return total
}
