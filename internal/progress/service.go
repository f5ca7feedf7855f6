package progress

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/logger"
	"github.com/osse101/RaidCompanion_Go/internal/metrics"
	"github.com/osse101/RaidCompanion_Go/internal/quest"
	"github.com/osse101/RaidCompanion_Go/internal/repository"
)

// CatalogSource provides the current catalog snapshot
type CatalogSource interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
}

// Service owns per-profile progress. Every mutation is a single read-modify-write transaction.
type Service interface {
	// Get returns the stored progress, or an empty record for an unknown profile
	Get(ctx context.Context, profileID string) (*domain.Progress, error)
	Replace(ctx context.Context, p *domain.Progress) (*domain.Progress, error)
	ToggleQuest(ctx context.Context, profileID, questID string) (*domain.Progress, error)
	SetWorkstationLevel(ctx context.Context, profileID, workstationID string, level int) (*domain.Progress, error)
	SetInventory(ctx context.Context, profileID string, inventory map[string]int) (*domain.Progress, error)
	SetTracked(ctx context.Context, profileID string, itemIDs []string) (*domain.Progress, error)
	Reset(ctx context.Context, profileID string) error
}

type service struct {
	repo    repository.Progress
	quests  quest.Service
	catalog CatalogSource
	now     func() time.Time
}

// NewService creates a progress service
func NewService(repo repository.Progress, quests quest.Service, catalog CatalogSource) Service {
	return &service{
		repo:    repo,
		quests:  quests,
		catalog: catalog,
		now:     time.Now,
	}
}

// ValidateProfileID checks that id is a UUID
func ValidateProfileID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: profile id must be a UUID", domain.ErrInvalidInput)
	}
	return nil
}

func (s *service) Get(ctx context.Context, profileID string) (*domain.Progress, error) {
	if err := ValidateProfileID(profileID); err != nil {
		return nil, err
	}
	p, err := s.repo.GetProgress(ctx, profileID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return domain.NewProgress(profileID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return p, nil
}

func (s *service) Replace(ctx context.Context, p *domain.Progress) (*domain.Progress, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: progress is required", domain.ErrInvalidInput)
	}
	if err := validateCounts(p.Inventory); err != nil {
		return nil, err
	}
	if err := validateCounts(p.WorkstationLevels); err != nil {
		return nil, err
	}
	return s.update(ctx, p.ProfileID, func(current *domain.Progress) error {
		current.CompletedQuests = dedupe(p.CompletedQuests)
		current.Inventory = withoutZeros(p.Inventory)
		current.WorkstationLevels = withoutZeros(p.WorkstationLevels)
		current.TrackedItems = dedupe(p.TrackedItems)
		return nil
	})
}

func (s *service) ToggleQuest(ctx context.Context, profileID, questID string) (*domain.Progress, error) {
	var action string
	p, err := s.update(ctx, profileID, func(current *domain.Progress) error {
		completed := quest.NewCompletedSet(current.CompletedQuests...)
		next, err := s.quests.Toggle(ctx, questID, completed)
		if err != nil {
			return err
		}
		action = metrics.ActionComplete
		if completed.Has(questID) {
			action = metrics.ActionUncomplete
		}
		current.CompletedQuests = next.IDs()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.QuestToggles.WithLabelValues(action).Inc()
	logger.FromContext(ctx).Info("Quest toggled", "profile_id", profileID, "quest", questID, "action", action)
	return p, nil
}

func (s *service) SetWorkstationLevel(ctx context.Context, profileID, workstationID string, level int) (*domain.Progress, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	ws, ok := c.Workstation(workstationID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrWorkstationNotFound, workstationID)
	}
	if level < 0 || (ws.MaxLevel > 0 && level > ws.MaxLevel) {
		return nil, fmt.Errorf("%w: %d (max %d)", domain.ErrInvalidLevel, level, ws.MaxLevel)
	}

	return s.update(ctx, profileID, func(current *domain.Progress) error {
		if level == 0 {
			delete(current.WorkstationLevels, workstationID)
		} else {
			current.WorkstationLevels[workstationID] = level
		}
		return nil
	})
}

func (s *service) SetInventory(ctx context.Context, profileID string, inventory map[string]int) (*domain.Progress, error) {
	if err := validateCounts(inventory); err != nil {
		return nil, err
	}
	return s.update(ctx, profileID, func(current *domain.Progress) error {
		for id, n := range inventory {
			if n == 0 {
				delete(current.Inventory, id)
				continue
			}
			current.Inventory[id] = n
		}
		return nil
	})
}

func (s *service) SetTracked(ctx context.Context, profileID string, itemIDs []string) (*domain.Progress, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range itemIDs {
		if _, ok := c.Item(id); !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		}
	}
	return s.update(ctx, profileID, func(current *domain.Progress) error {
		current.TrackedItems = dedupe(itemIDs)
		return nil
	})
}

func (s *service) Reset(ctx context.Context, profileID string) error {
	if err := ValidateProfileID(profileID); err != nil {
		return err
	}
	if err := s.repo.DeleteProgress(ctx, profileID); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	logger.FromContext(ctx).Info("Progress reset", "profile_id", profileID)
	return nil
}

func (s *service) snapshot(ctx context.Context) (*domain.Catalog, error) {
	c, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

// update runs fn against the locked progress record and persists the result
func (s *service) update(ctx context.Context, profileID string, fn func(*domain.Progress) error) (*domain.Progress, error) {
	if err := ValidateProfileID(profileID); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetProgressForUpdate(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	if p.Inventory == nil {
		p.Inventory = map[string]int{}
	}
	if p.WorkstationLevels == nil {
		p.WorkstationLevels = map[string]int{}
	}

	if err := fn(p); err != nil {
		return nil, err
	}
	p.ProfileID = profileID
	p.UpdatedAt = s.now().UTC()

	if err := tx.SaveProgress(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return p, nil
}

func validateCounts(counts map[string]int) error {
	for id, n := range counts {
		if id == "" || n < 0 {
			return fmt.Errorf("%w: counts must be non-negative", domain.ErrInvalidInput)
		}
	}
	return nil
}

func withoutZeros(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		if v != 0 {
			out[k] = v
		}
	}
	return out
}

// dedupe returns the sorted unique ids
func dedupe(ids []string) []string {
	out := append([]string{}, ids...)
	slices.Sort(out)
	return slices.Compact(out)
}
