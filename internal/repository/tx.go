package repository

import (
	"context"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// ProgressTx reads and writes a profile's progress inside one transaction
type ProgressTx interface {
	Tx
	// GetProgressForUpdate locks the profile row; a missing profile yields a fresh empty record
	GetProgressForUpdate(ctx context.Context, profileID string) (*domain.Progress, error)
	SaveProgress(ctx context.Context, progress *domain.Progress) error
}
