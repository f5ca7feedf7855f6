package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// MockProgressService is a mock type for the progress.Service type
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) progressResult(args mock.Arguments) (*domain.Progress, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Progress), args.Error(1)
}

func (m *MockProgressService) Get(ctx context.Context, profileID string) (*domain.Progress, error) {
	return m.progressResult(m.Called(ctx, profileID))
}

func (m *MockProgressService) Replace(ctx context.Context, p *domain.Progress) (*domain.Progress, error) {
	return m.progressResult(m.Called(ctx, p))
}

func (m *MockProgressService) ToggleQuest(ctx context.Context, profileID, questID string) (*domain.Progress, error) {
	return m.progressResult(m.Called(ctx, profileID, questID))
}

func (m *MockProgressService) SetWorkstationLevel(ctx context.Context, profileID, workstationID string, level int) (*domain.Progress, error) {
	return m.progressResult(m.Called(ctx, profileID, workstationID, level))
}

func (m *MockProgressService) SetInventory(ctx context.Context, profileID string, inventory map[string]int) (*domain.Progress, error) {
	return m.progressResult(m.Called(ctx, profileID, inventory))
}

func (m *MockProgressService) SetTracked(ctx context.Context, profileID string, itemIDs []string) (*domain.Progress, error) {
	return m.progressResult(m.Called(ctx, profileID, itemIDs))
}

func (m *MockProgressService) Reset(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

// NewMockProgressService creates a new instance of MockProgressService
func NewMockProgressService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProgressService {
	m := &MockProgressService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
