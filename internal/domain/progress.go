package domain

import "time"

// Progress is the user-held state the engines read as input
type Progress struct {
	ProfileID         string         `json:"profile_id"`
	CompletedQuests   []string       `json:"completed_quests"`
	Inventory         map[string]int `json:"inventory"`
	WorkstationLevels map[string]int `json:"workstation_levels"`
	TrackedItems      []string       `json:"tracked_items"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// NewProgress returns an empty progress record for a profile
func NewProgress(profileID string) *Progress {
	return &Progress{
		ProfileID:         profileID,
		CompletedQuests:   []string{},
		Inventory:         map[string]int{},
		WorkstationLevels: map[string]int{},
		TrackedItems:      []string{},
	}
}
