package quest

import (
	"sort"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// CompletedSet is the set of quest ids a profile has completed
type CompletedSet map[string]struct{}

// NewCompletedSet builds a set from ids
func NewCompletedSet(ids ...string) CompletedSet {
	s := make(CompletedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is completed. A nil set contains nothing.
func (s CompletedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the completed ids in sorted order
func (s CompletedSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s CompletedSet) clone() CompletedSet {
	out := make(CompletedSet, len(s)+1)
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// DeriveStatus computes the status of q against the completed set.
// A quest is completed if its id is in the set, active when every prerequisite is
// completed (always true without prerequisites), and locked otherwise.
func DeriveStatus(q *domain.Quest, completed CompletedSet) domain.QuestState {
	state := domain.QuestState{
		Quest:            q,
		PreviousQuestIDs: append([]string{}, q.PreviousQuestIDs...),
		NextQuestIDs:     append([]string{}, q.NextQuestIDs...),
	}

	switch {
	case completed.Has(q.ID):
		state.Status = domain.QuestStatusCompleted
	case prerequisitesMet(q, completed):
		state.Status = domain.QuestStatusActive
	default:
		state.Status = domain.QuestStatusLocked
	}
	return state
}

func prerequisitesMet(q *domain.Quest, completed CompletedSet) bool {
	for _, prev := range q.PreviousQuestIDs {
		if !completed.Has(prev) {
			return false
		}
	}
	return true
}

// CompleteWithPrerequisites toggles questID and returns a new set; completed is never modified.
//
// If questID is already completed only that id is removed; dependents stay completed.
// Otherwise questID and every transitive prerequisite not yet completed are added, so
// the quest can never end up active with an incomplete prerequisite. Prerequisite
// cycles terminate through the visited set.
func CompleteWithPrerequisites(questID string, completed CompletedSet, all []domain.Quest) CompletedSet {
	next := completed.clone()

	if completed.Has(questID) {
		delete(next, questID)
		return next
	}

	byID := make(map[string]*domain.Quest, len(all))
	for i := range all {
		byID[all[i].ID] = &all[i]
	}

	visited := make(map[string]bool)
	var visit func(id string)
	visit = func(id string) {
		if visited[id] || completed.Has(id) {
			return
		}
		visited[id] = true
		next[id] = struct{}{}

		q, ok := byID[id]
		if !ok {
			return
		}
		for _, prev := range q.PreviousQuestIDs {
			visit(prev)
		}
	}
	visit(questID)

	return next
}
