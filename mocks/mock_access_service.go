package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docvault/internal/domain"
	"docvault/internal/service"
)

// MockAccessService is a mock implementation of service.AccessService.
type MockAccessService struct {
	mock.Mock
}

func (m *MockAccessService) Grant(ctx context.Context, input *service.GrantInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockAccessService) Revoke(ctx context.Context, enterpriseID, documentID, grantorID, granteeID string) error {
	args := m.Called(ctx, enterpriseID, documentID, grantorID, granteeID)
	return args.Error(0)
}

func (m *MockAccessService) RecordAccess(ctx context.Context, enterpriseID, documentID, callerID string) error {
	args := m.Called(ctx, enterpriseID, documentID, callerID)
	return args.Error(0)
}

func (m *MockAccessService) ListGrants(ctx context.Context, enterpriseID, documentID, callerID string, offset, limit int) ([]domain.Grant, int, error) {
	args := m.Called(ctx, enterpriseID, documentID, callerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Grant), args.Int(1), args.Error(2)
}

func (m *MockAccessService) GetAuditEntry(ctx context.Context, enterpriseID, documentID, callerID string, sequence int64) (*domain.AuditEntry, error) {
	args := m.Called(ctx, enterpriseID, documentID, callerID, sequence)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditEntry), args.Error(1)
}

func (m *MockAccessService) ListAuditTrail(ctx context.Context, enterpriseID, documentID, callerID string, offset, limit int) ([]domain.AuditEntry, int, error) {
	args := m.Called(ctx, enterpriseID, documentID, callerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AuditEntry), args.Int(1), args.Error(2)
}
