package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docvault/internal/domain"
	"docvault/internal/service"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Create(ctx context.Context, input *service.CreateDocumentInput) (*domain.Document, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) Update(ctx context.Context, input *service.UpdateDocumentInput) (*domain.Document, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) SoftDelete(ctx context.Context, enterpriseID, documentID, callerID string) error {
	args := m.Called(ctx, enterpriseID, documentID, callerID)
	return args.Error(0)
}

func (m *MockDocumentService) Get(ctx context.Context, enterpriseID, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, enterpriseID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, enterpriseID, callerID string, offset, limit int) ([]domain.Document, int, error) {
	args := m.Called(ctx, enterpriseID, callerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Document), args.Int(1), args.Error(2)
}
