package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docvault/internal/domain"
	"docvault/internal/service"
)

// MockEnterpriseService is a mock implementation of service.EnterpriseService.
type MockEnterpriseService struct {
	mock.Mock
}

func (m *MockEnterpriseService) Register(ctx context.Context, input *service.RegisterEnterpriseInput) (*domain.Enterprise, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enterprise), args.Error(1)
}

func (m *MockEnterpriseService) Lookup(ctx context.Context, enterpriseID string) (*domain.Enterprise, error) {
	args := m.Called(ctx, enterpriseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enterprise), args.Error(1)
}
