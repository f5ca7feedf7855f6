package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/repository"
)

// MockRepositoryProgress is a mock type for the repository.Progress type
type MockRepositoryProgress struct {
	mock.Mock
}

func (m *MockRepositoryProgress) GetProgress(ctx context.Context, profileID string) (*domain.Progress, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Progress), args.Error(1)
}

func (m *MockRepositoryProgress) BeginTx(ctx context.Context) (repository.ProgressTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ProgressTx), args.Error(1)
}

func (m *MockRepositoryProgress) DeleteProgress(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

// NewMockRepositoryProgress creates a new instance of MockRepositoryProgress
func NewMockRepositoryProgress(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryProgress {
	m := &MockRepositoryProgress{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockRepositoryProgressTx is a mock type for the repository.ProgressTx type
type MockRepositoryProgressTx struct {
	mock.Mock
}

func (m *MockRepositoryProgressTx) GetProgressForUpdate(ctx context.Context, profileID string) (*domain.Progress, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Progress), args.Error(1)
}

func (m *MockRepositoryProgressTx) SaveProgress(ctx context.Context, p *domain.Progress) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepositoryProgressTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepositoryProgressTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// NewMockRepositoryProgressTx creates a new instance of MockRepositoryProgressTx
func NewMockRepositoryProgressTx(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryProgressTx {
	m := &MockRepositoryProgressTx{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
