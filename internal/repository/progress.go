package repository

import (
	"context"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// Progress defines the interface for per-profile progress persistence
type Progress interface {
	// GetProgress returns domain.ErrProfileNotFound when the profile has no record
	GetProgress(ctx context.Context, profileID string) (*domain.Progress, error)
	BeginTx(ctx context.Context) (ProgressTx, error)
	DeleteProgress(ctx context.Context, profileID string) error
}
