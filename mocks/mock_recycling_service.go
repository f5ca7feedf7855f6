package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/recycling"
)

// MockRecyclingService is a mock type for the recycling.Service type
type MockRecyclingService struct {
	mock.Mock
}

func (m *MockRecyclingService) GetChain(ctx context.Context, itemID string, quantity int) (*domain.RecyclingNode, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecyclingNode), args.Error(1)
}

func (m *MockRecyclingService) GetMetrics(ctx context.Context, itemID string) (*domain.RecyclingMetrics, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecyclingMetrics), args.Error(1)
}

func (m *MockRecyclingService) GetMetricsTable(ctx context.Context) ([]domain.RecyclingMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecyclingMetrics), args.Error(1)
}

func (m *MockRecyclingService) GetTerminals(ctx context.Context, itemID string, quantity int) (map[string]int, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockRecyclingService) FindSources(ctx context.Context, targetID string, opts recycling.SourceOptions) ([]domain.RecyclingPath, error) {
	args := m.Called(ctx, targetID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecyclingPath), args.Error(1)
}

// NewMockRecyclingService creates a new instance of MockRecyclingService
func NewMockRecyclingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecyclingService {
	m := &MockRecyclingService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
