package domain

// Workstation represents an upgradable hideout workstation
type Workstation struct {
	ID       string             `json:"id"`
	Name     LocalizedText      `json:"name"`
	MaxLevel int                `json:"max_level"`
	Levels   []WorkstationLevel `json:"levels"`
}

// WorkstationLevel lists what is required to reach a level
type WorkstationLevel struct {
	Level             int            `json:"level"`
	Requirements      []ItemQuantity `json:"requirements"`
	OtherRequirements []string       `json:"other_requirements,omitempty"`
}

// Project represents a multi-phase community project
type Project struct {
	ID     string         `json:"id"`
	Name   LocalizedText  `json:"name"`
	Phases []ProjectPhase `json:"phases"`
}

// ProjectPhase lists item and category requirements for one phase
type ProjectPhase struct {
	Phase              int                `json:"phase"`
	Name               LocalizedText      `json:"name"`
	RequiredItems      []ItemQuantity     `json:"required_items,omitempty"`
	RequiredCategories []CategoryQuantity `json:"required_categories,omitempty"`
}

// CategoryQuantity requires an aggregate value of items from a category rather than specific items
type CategoryQuantity struct {
	Category      string `json:"category"`
	ValueRequired int    `json:"value_required"`
}
