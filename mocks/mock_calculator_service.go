package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RaidCompanion_Go/internal/calculator"
)

// MockCalculatorService is a mock type for the calculator.Service type
type MockCalculatorService struct {
	mock.Mock
}

func (m *MockCalculatorService) Calculate(ctx context.Context, sel calculator.Selection) (*calculator.Result, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calculator.Result), args.Error(1)
}

// NewMockCalculatorService creates a new instance of MockCalculatorService
func NewMockCalculatorService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCalculatorService {
	m := &MockCalculatorService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
