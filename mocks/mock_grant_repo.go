package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docvault/internal/domain"
)

// MockGrantRepo is a mock implementation of port.GrantRepository.
type MockGrantRepo struct {
	mock.Mock
}

func (m *MockGrantRepo) Upsert(ctx context.Context, grant *domain.Grant) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockGrantRepo) GetByDocumentAndUser(ctx context.Context, enterpriseID, documentID, userID string) (*domain.Grant, error) {
	args := m.Called(ctx, enterpriseID, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Grant), args.Error(1)
}

func (m *MockGrantRepo) Delete(ctx context.Context, enterpriseID, documentID, userID string) error {
	args := m.Called(ctx, enterpriseID, documentID, userID)
	return args.Error(0)
}

func (m *MockGrantRepo) ListByDocument(ctx context.Context, enterpriseID, documentID string, offset, limit int) ([]domain.Grant, int, error) {
	args := m.Called(ctx, enterpriseID, documentID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Grant), args.Int(1), args.Error(2)
}
