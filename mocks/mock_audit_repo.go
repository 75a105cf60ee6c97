package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docvault/internal/domain"
)

// MockAuditRepo is a mock implementation of port.AuditLogRepository.
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) NextSequence(ctx context.Context, enterpriseID, documentID string) (int64, error) {
	args := m.Called(ctx, enterpriseID, documentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuditRepo) Append(ctx context.Context, entry *domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepo) GetBySequence(ctx context.Context, enterpriseID, documentID string, sequence int64) (*domain.AuditEntry, error) {
	args := m.Called(ctx, enterpriseID, documentID, sequence)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditEntry), args.Error(1)
}

func (m *MockAuditRepo) ListByDocument(ctx context.Context, enterpriseID, documentID string, offset, limit int) ([]domain.AuditEntry, int, error) {
	args := m.Called(ctx, enterpriseID, documentID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AuditEntry), args.Int(1), args.Error(2)
}
