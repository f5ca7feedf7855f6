package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/repository"
)

const progressColumns = `profile_id, completed_quests, inventory, workstation_levels, tracked_items, updated_at`

// ProgressRepository implements repository.Progress for PostgreSQL
type ProgressRepository struct {
	pool *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(pool *pgxpool.Pool) repository.Progress {
	return &ProgressRepository{pool: pool}
}

// GetProgress returns the stored progress of a profile
func (r *ProgressRepository) GetProgress(ctx context.Context, profileID string) (*domain.Progress, error) {
	id, err := parseProfileUUID(profileID)
	if err != nil {
		return nil, err
	}
	p, err := scanProgress(r.pool.QueryRow(ctx,
		`SELECT `+progressColumns+` FROM profile_progress WHERE profile_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return p, nil
}

// DeleteProgress removes a profile's progress
func (r *ProgressRepository) DeleteProgress(ctx context.Context, profileID string) error {
	id, err := parseProfileUUID(profileID)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM profile_progress WHERE profile_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	return nil
}

// BeginTx starts a transaction for a read-modify-write of progress
func (r *ProgressRepository) BeginTx(ctx context.Context) (repository.ProgressTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &progressTx{tx: tx}, nil
}

type progressTx struct {
	tx pgx.Tx
}

// GetProgressForUpdate creates the row if needed so the lock always covers it
func (t *progressTx) GetProgressForUpdate(ctx context.Context, profileID string) (*domain.Progress, error) {
	id, err := parseProfileUUID(profileID)
	if err != nil {
		return nil, err
	}
	if _, err := t.tx.Exec(ctx,
		`INSERT INTO profile_progress (profile_id) VALUES ($1) ON CONFLICT (profile_id) DO NOTHING`, id); err != nil {
		return nil, fmt.Errorf("failed to create progress row: %w", err)
	}
	p, err := scanProgress(t.tx.QueryRow(ctx,
		`SELECT `+progressColumns+` FROM profile_progress WHERE profile_id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to lock progress: %w", err)
	}
	return p, nil
}

func (t *progressTx) SaveProgress(ctx context.Context, p *domain.Progress) error {
	id, err := parseProfileUUID(p.ProfileID)
	if err != nil {
		return err
	}
	inventory, err := json.Marshal(p.Inventory)
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	levels, err := json.Marshal(p.WorkstationLevels)
	if err != nil {
		return fmt.Errorf("failed to encode workstation levels: %w", err)
	}
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = t.tx.Exec(ctx, `
		INSERT INTO profile_progress (profile_id, completed_quests, inventory, workstation_levels, tracked_items, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (profile_id) DO UPDATE SET
			completed_quests = EXCLUDED.completed_quests,
			inventory = EXCLUDED.inventory,
			workstation_levels = EXCLUDED.workstation_levels,
			tracked_items = EXCLUDED.tracked_items,
			updated_at = EXCLUDED.updated_at`,
		id, nonNil(p.CompletedQuests), inventory, levels, nonNil(p.TrackedItems), updatedAt)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (t *progressTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *progressTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func scanProgress(row pgx.Row) (*domain.Progress, error) {
	var (
		p                 domain.Progress
		id                uuid.UUID
		inventory, levels []byte
	)
	if err := row.Scan(&id, &p.CompletedQuests, &inventory, &levels, &p.TrackedItems, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.ProfileID = id.String()
	if err := json.Unmarshal(inventory, &p.Inventory); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}
	if err := json.Unmarshal(levels, &p.WorkstationLevels); err != nil {
		return nil, fmt.Errorf("failed to decode workstation levels: %w", err)
	}
	if p.Inventory == nil {
		p.Inventory = map[string]int{}
	}
	if p.WorkstationLevels == nil {
		p.WorkstationLevels = map[string]int{}
	}
	p.CompletedQuests = nonNil(p.CompletedQuests)
	p.TrackedItems = nonNil(p.TrackedItems)
	return &p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
