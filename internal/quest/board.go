package quest

import (
	"math"
	"sort"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// TraderBoard groups quest states of a single trader
type TraderBoard struct {
	Trader    string              `json:"trader"`
	Quests    []domain.QuestState `json:"quests"`
	Completed int                 `json:"completed"`
	Active    int                 `json:"active"`
	Locked    int                 `json:"locked"`
}

// Summary counts quests by status
type Summary struct {
	Total           int     `json:"total"`
	Completed       int     `json:"completed"`
	Active          int     `json:"active"`
	Locked          int     `json:"locked"`
	PercentComplete float64 `json:"percent_complete"`
}

// Board is the full quest log of a profile
type Board struct {
	Traders []TraderBoard `json:"traders"`
	Summary Summary       `json:"summary"`
}

// BuildBoard derives every quest status and groups the results by trader.
// Traders are sorted by name; quests keep catalog order within a trader.
func BuildBoard(quests []domain.Quest, completed CompletedSet) Board {
	byTrader := make(map[string]*TraderBoard)
	var order []string
	var summary Summary

	for i := range quests {
		state := DeriveStatus(&quests[i], completed)

		tb, ok := byTrader[quests[i].Trader]
		if !ok {
			tb = &TraderBoard{Trader: quests[i].Trader}
			byTrader[quests[i].Trader] = tb
			order = append(order, quests[i].Trader)
		}
		tb.Quests = append(tb.Quests, state)

		switch state.Status {
		case domain.QuestStatusCompleted:
			tb.Completed++
			summary.Completed++
		case domain.QuestStatusActive:
			tb.Active++
			summary.Active++
		default:
			tb.Locked++
			summary.Locked++
		}
	}

	sort.Strings(order)
	board := Board{Traders: make([]TraderBoard, 0, len(order))}
	for _, trader := range order {
		board.Traders = append(board.Traders, *byTrader[trader])
	}

	summary.Total = len(quests)
	if summary.Total > 0 {
		summary.PercentComplete = math.Round(float64(summary.Completed)/float64(summary.Total)*1000) / 10
	}
	board.Summary = summary
	return board
}

// RequiredItemsForActive sums the items required by every currently active quest
func RequiredItemsForActive(quests []domain.Quest, completed CompletedSet) map[string]int {
	totals := make(map[string]int)
	for i := range quests {
		if DeriveStatus(&quests[i], completed).Status != domain.QuestStatusActive {
			continue
		}
		for _, req := range quests[i].RequiredItems {
			totals[req.ItemID] += req.Quantity
		}
	}
	return totals
}
