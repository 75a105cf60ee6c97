package mocks

import (
	"context"

	"docvault/internal/port"
)

// StubStore is a port.Store over the repository mocks. Atomic simply runs
// the callback against the same mock set, so service tests assert against
// the repo mocks directly without a database.
type StubStore struct {
	EnterpriseRepo *MockEnterpriseRepo
	DocumentRepo   *MockDocumentRepo
	GrantRepo      *MockGrantRepo
	AuditRepo      *MockAuditRepo

	// AtomicErr, when set, makes Atomic fail without invoking the callback.
	AtomicErr error
}

// NewStubStore creates a StubStore with fresh repo mocks.
func NewStubStore() *StubStore {
	return &StubStore{
		EnterpriseRepo: new(MockEnterpriseRepo),
		DocumentRepo:   new(MockDocumentRepo),
		GrantRepo:      new(MockGrantRepo),
		AuditRepo:      new(MockAuditRepo),
	}
}

func (s *StubStore) Enterprises() port.EnterpriseRepository { return s.EnterpriseRepo }
func (s *StubStore) Documents() port.DocumentRepository     { return s.DocumentRepo }
func (s *StubStore) Grants() port.GrantRepository           { return s.GrantRepo }
func (s *StubStore) Audit() port.AuditLogRepository         { return s.AuditRepo }

func (s *StubStore) Atomic(_ context.Context, fn func(r port.Repositories) error) error {
	if s.AtomicErr != nil {
		return s.AtomicErr
	}
	return fn(s)
}
