package quest

import (
	"context"
	"fmt"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/logger"
)

// CatalogSource provides the current catalog snapshot
type CatalogSource interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
}

// Service exposes quest status derivation over the live catalog
type Service interface {
	GetBoard(ctx context.Context, completed CompletedSet) (*Board, error)
	GetQuest(ctx context.Context, questID string, completed CompletedSet) (*domain.QuestState, error)
	GetRequiredItems(ctx context.Context, completed CompletedSet) (map[string]int, error)
	// Toggle applies CompleteWithPrerequisites after checking the quest exists
	Toggle(ctx context.Context, questID string, completed CompletedSet) (CompletedSet, error)
}

type service struct {
	catalog CatalogSource
}

// NewService creates a quest service
func NewService(catalog CatalogSource) Service {
	return &service{catalog: catalog}
}

func (s *service) quests(ctx context.Context) (*domain.Catalog, error) {
	c, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

// GetBoard returns every quest grouped by trader with derived statuses
func (s *service) GetBoard(ctx context.Context, completed CompletedSet) (*Board, error) {
	c, err := s.quests(ctx)
	if err != nil {
		return nil, err
	}
	board := BuildBoard(c.Quests, completed)
	return &board, nil
}

// GetQuest returns a single quest with its derived status
func (s *service) GetQuest(ctx context.Context, questID string, completed CompletedSet) (*domain.QuestState, error) {
	c, err := s.quests(ctx)
	if err != nil {
		return nil, err
	}
	q, ok := c.Quest(questID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestNotFound, questID)
	}
	state := DeriveStatus(q, completed)
	return &state, nil
}

// GetRequiredItems returns the items needed to turn in every active quest
func (s *service) GetRequiredItems(ctx context.Context, completed CompletedSet) (map[string]int, error) {
	c, err := s.quests(ctx)
	if err != nil {
		return nil, err
	}
	return RequiredItemsForActive(c.Quests, completed), nil
}

// Toggle completes questID with its prerequisites, or uncompletes it if already completed
func (s *service) Toggle(ctx context.Context, questID string, completed CompletedSet) (CompletedSet, error) {
	c, err := s.quests(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := c.Quest(questID); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestNotFound, questID)
	}

	next := CompleteWithPrerequisites(questID, completed, c.Quests)
	logger.FromContext(ctx).Debug("Quest toggled",
		"quest", questID,
		"before", len(completed),
		"after", len(next))
	return next, nil
}
