package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docvault/internal/domain"
)

// MockEnterpriseRepo is a mock implementation of port.EnterpriseRepository.
type MockEnterpriseRepo struct {
	mock.Mock
}

func (m *MockEnterpriseRepo) Create(ctx context.Context, enterprise *domain.Enterprise) error {
	args := m.Called(ctx, enterprise)
	return args.Error(0)
}

func (m *MockEnterpriseRepo) GetByID(ctx context.Context, id string) (*domain.Enterprise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enterprise), args.Error(1)
}
