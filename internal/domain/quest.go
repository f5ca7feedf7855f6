package domain

// Quest represents a quest definition in the catalog.
// PreviousQuestIDs and NextQuestIDs form the prerequisite DAG.
type Quest struct {
	ID               string          `json:"id"`
	Name             LocalizedText   `json:"name"`
	Trader           string          `json:"trader"`
	Objectives       []LocalizedText `json:"objectives"`
	RequiredItems    []ItemQuantity  `json:"required_items,omitempty"`
	RewardItems      []ItemQuantity  `json:"reward_items,omitempty"`
	XP               int             `json:"xp"`
	PreviousQuestIDs []string        `json:"previous_quest_ids,omitempty"`
	NextQuestIDs     []string        `json:"next_quest_ids,omitempty"`
}

// QuestStatus is the derived status of a quest for a given completed set
type QuestStatus string

const (
	QuestStatusCompleted QuestStatus = "completed"
	QuestStatusActive    QuestStatus = "active"
	QuestStatusLocked    QuestStatus = "locked"
)

// QuestState is a quest together with its derived status
type QuestState struct {
	Quest            *Quest      `json:"quest"`
	Status           QuestStatus `json:"status"`
	PreviousQuestIDs []string    `json:"previous_quest_ids"`
	NextQuestIDs     []string    `json:"next_quest_ids"`
}
