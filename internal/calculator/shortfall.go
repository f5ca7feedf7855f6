package calculator

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// Missing is a requirement not yet covered by the inventory
type Missing struct {
	Requirement
	Have    int `json:"have"`
	Missing int `json:"missing"`
}

// Shortfall compares the requirements against inventory counts.
// Inventory is shared across categories in Flatten order; fully covered requirements are omitted.
func Shortfall(r *Result, inventory map[string]int) []Missing {
	remaining := make(map[string]int, len(inventory))
	for id, n := range inventory {
		remaining[id] = n
	}

	var out []Missing
	for _, req := range r.Flatten() {
		have := min(remaining[req.ItemID], req.Quantity)
		have = max(have, 0)
		remaining[req.ItemID] -= have
		if have >= req.Quantity {
			continue
		}
		out = append(out, Missing{
			Requirement: req,
			Have:        have,
			Missing:     req.Quantity - have,
		})
	}
	return out
}

var labelReplacer = strings.NewReplacer("_", " ", "-", " ")

// CategoryLabel turns an item type such as "topside_material" into "Topside Material"
func CategoryLabel(category string) string {
	if category == "" {
		return domain.CategoryUncategorized
	}
	// a Caser keeps state, so each call gets its own
	return cases.Title(language.English).String(labelReplacer.Replace(category))
}
