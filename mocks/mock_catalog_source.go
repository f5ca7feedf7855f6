package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// MockCatalogSource is a mock type for the CatalogSource interfaces of the engine services
type MockCatalogSource struct {
	mock.Mock
}

// Snapshot provides a mock function with given fields: ctx
func (m *MockCatalogSource) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Catalog), args.Error(1)
}

// NewMockCatalogSource creates a new instance of MockCatalogSource and registers
// a cleanup that asserts its expectations
func NewMockCatalogSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogSource {
	m := &MockCatalogSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
