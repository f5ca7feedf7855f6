package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
	"github.com/osse101/RaidCompanion_Go/internal/quest"
)

// MockQuestService is a mock type for the quest.Service type
type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) GetBoard(ctx context.Context, completed quest.CompletedSet) (*quest.Board, error) {
	args := m.Called(ctx, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quest.Board), args.Error(1)
}

func (m *MockQuestService) GetQuest(ctx context.Context, questID string, completed quest.CompletedSet) (*domain.QuestState, error) {
	args := m.Called(ctx, questID, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuestState), args.Error(1)
}

func (m *MockQuestService) GetRequiredItems(ctx context.Context, completed quest.CompletedSet) (map[string]int, error) {
	args := m.Called(ctx, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockQuestService) Toggle(ctx context.Context, questID string, completed quest.CompletedSet) (quest.CompletedSet, error) {
	args := m.Called(ctx, questID, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(quest.CompletedSet), args.Error(1)
}

// NewMockQuestService creates a new instance of MockQuestService
func NewMockQuestService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuestService {
	m := &MockQuestService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
