package calculator

import (
	"context"
	"fmt"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/logger"
	"github.com/osse101/RaidCompanion_Go/internal/metrics"
)

// CatalogSource provides the current catalog snapshot
type CatalogSource interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
}

// Service runs the requirement calculator against the live catalog
type Service interface {
	Calculate(ctx context.Context, sel Selection) (*Result, error)
}

type service struct {
	catalog CatalogSource
}

// NewService creates a calculator service
func NewService(catalog CatalogSource) Service {
	return &service{catalog: catalog}
}

func (s *service) Calculate(ctx context.Context, sel Selection) (*Result, error) {
	for _, iq := range sel.Custom {
		if iq.ItemID == "" || iq.Quantity <= 0 {
			return nil, fmt.Errorf("%w: custom material needs an item id and positive quantity", domain.ErrInvalidInput)
		}
	}

	c, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	result := Calculate(sel, c)
	metrics.CalculatorRuns.Inc()

	if len(result.Skipped) > 0 {
		logger.FromContext(ctx).Warn("Calculator skipped stale selection entries", "skipped", result.Skipped)
	}
	return result, nil
}
