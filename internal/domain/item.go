package domain

// Item represents a catalog item. Items with a non-empty RecyclesInto recipe can be
// recycled; items without one are terminal materials.
type Item struct {
	ID           string         `json:"id" validate:"required"`
	Name         LocalizedText  `json:"name"`
	Description  LocalizedText  `json:"description"`
	Type         string         `json:"type"`
	Rarity       Rarity         `json:"rarity,omitempty"`
	Value        int            `json:"value"`
	Weight       *float64       `json:"weight,omitempty"`
	RecyclesInto map[string]int `json:"recycles_into,omitempty"` // output item id -> quantity per unit
}

// IsTerminal reports whether the item cannot be recycled further
func (i *Item) IsTerminal() bool {
	return len(i.RecyclesInto) == 0
}

// ItemQuantity is a quantity-weighted edge to an item
type ItemQuantity struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// Rarity represents the rarity tier of an item. The empty value means no rarity.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

var rarityRanks = map[Rarity]int{
	RarityCommon:    1,
	RarityUncommon:  2,
	RarityRare:      3,
	RarityEpic:      4,
	RarityLegendary: 5,
}

// Rank returns the position of the rarity in the ordered set, 0 when absent or unknown
func (r Rarity) Rank() int {
	return rarityRanks[r]
}

// IsValid reports whether r is absent or one of the known tiers
func (r Rarity) IsValid() bool {
	if r == "" {
		return true
	}
	_, ok := rarityRanks[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. An absent min matches everything.
func (r Rarity) AtLeast(min Rarity) bool {
	return r.Rank() >= min.Rank()
}
