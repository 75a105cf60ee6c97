package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docvault/internal/domain"
	"docvault/internal/service"
	"docvault/mocks"
)

func stubOwnedDocument(store *mocks.StubStore) {
	store.EnterpriseRepo.On("GetByID", mock.Anything, "e1").
		Return(&domain.Enterprise{ID: "e1", Owner: "alice"}, nil)
	store.DocumentRepo.On("GetByID", mock.Anything, "e1", "d1").
		Return(&domain.Document{EnterpriseID: "e1", ID: "d1", IsActive: true}, nil)
}

func TestAccessService_Grant_Success(t *testing.T) {
	store := mocks.NewStubStore()
	svc := service.NewAccessService(store)
	stubOwnedDocument(store)

	store.GrantRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(g *domain.Grant) bool {
		return g.UserID == "bob" && g.Level == domain.PermissionRead && g.GrantedBy == "alice"
	})).Return(nil)
	store.AuditRepo.On("NextSequence", mock.Anything, "e1", "d1").Return(int64(2), nil)
	store.AuditRepo.On("Append", mock.Anything, mock.MatchedBy(func(entry *domain.AuditEntry) bool {
		return entry.Action == domain.ActionShare && entry.UserID == "alice" &&
			entry.Details == "granted read to bob"
	})).Return(nil)

	err := svc.Grant(context.Background(), &service.GrantInput{
		EnterpriseID: "e1", DocumentID: "d1",
		GrantorID: "alice", GranteeID: "bob", Level: domain.PermissionRead,
	})

	assert.NoError(t, err)
	store.GrantRepo.AssertExpectations(t)
	store.AuditRepo.AssertExpectations(t)
}

func TestAccessService_Grant_OnlyReadAndFullGrantable(t *testing.T) {
	store := mocks.NewStubStore()
	svc := service.NewAccessService(store)
	stubOwnedDocument(store)

	for _, level := range []domain.PermissionLevel{domain.PermissionNone, domain.PermissionModify, domain.PermissionManage} {
		err := svc.Grant(context.Background(), &service.GrantInput{
			EnterpriseID: "e1", DocumentID: "d1",
			GrantorID: "alice", GranteeID: "bob", Level: level,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPermission, "level %s", level)
	}
	store.GrantRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	store.AuditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestAccessService_Grant_RequiresManage(t *testing.T) {
	store := mocks.NewStubStore()
	svc := service.NewAccessService(store)

	store.EnterpriseRepo.On("GetByID", mock.Anything, "e1").
		Return(&domain.Enterprise{ID: "e1", Owner: "alice"}, nil)
	store.GrantRepo.On("GetByDocumentAndUser", mock.Anything, "e1", "d1", "bob").
		Return(&domain.Grant{Level: domain.PermissionModify}, nil)

	err := svc.Grant(context.Background(), &service.GrantInput{
		EnterpriseID: "e1", DocumentID: "d1",
		GrantorID: "bob", GranteeID: "carol", Level: domain.PermissionRead,
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	// Authorization is checked before the document lookup.
	store.DocumentRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccessService_Grant_MissingDocument(t *testing.T) {
	store := mocks.NewStubStore()
	svc := service.NewAccessService(store)

	store.EnterpriseRepo.On("GetByID", mock.Anything, "e1").
		Return(&domain.Enterprise{ID: "e1", Owner: "alice"}, nil)
	store.DocumentRepo.On("GetByID", mock.Anything, "e1", "ghost").Return(nil, domain.ErrNotFound)

	err := svc.Grant(context.Background(), &service.GrantInput{
		EnterpriseID: "e1", DocumentID: "ghost",
		GrantorID: "alice", GranteeID: "bob", Level: domain.PermissionRead,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	store.AuditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestAccessService_Revoke_MissingGrantStillSucceeds(t *testing.T) {
	store := mocks.NewStubStore()
	svc := service.NewAccessService(store)
	stubOwnedDocument(store)

	store.GrantRepo.On("Delete", mock.Anything, "e1", "d1", "bob").Return(domain.ErrNotFound)
	store.AuditRepo.On("NextSequence", mock.Anything, "e1", "d1").Return(int64(4), nil)
	store.AuditRepo.On("Append", mock.Anything, mock.MatchedBy(func(entry *domain.AuditEntry) bool {
		return entry.Action == domain.ActionShare && entry.Details == "revoked access from bob"
	})).Return(nil)

	err := svc.Revoke(context.Background(), "e1", "d1", "alice", "bob")

	assert.NoError(t, err)
	store.AuditRepo.AssertExpectations(t)
}

func TestAccessService_Revoke_RequiresManage(t *testing.T) {
	store := mocks.NewStubStore()
	svc := service.NewAccessService(store)

	store.EnterpriseRepo.On("GetByID", mock.Anything, "e1").
		Return(&domain.Enterprise{ID: "e1", Owner: "alice"}, nil)
	store.GrantRepo.On("GetByDocumentAndUser", mock.Anything, "e1", "d1", "bob").
		Return(&domain.Grant{Level: domain.PermissionRead}, nil)

	err := svc.Revoke(context.Background(), "e1", "d1", "bob", "carol")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	store.GrantRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccessService_RecordAccess_Success(t *testing.T) {
	store := mocks.NewStubStore()
	svc := service.NewAccessService(store)

	store.EnterpriseRepo.On("GetByID", mock.Anything, "e1").
		Return(&domain.Enterprise{ID: "e1", Owner: "alice"}, nil)
	store.GrantRepo.On("GetByDocumentAndUser", mock.Anything, "e1", "d1", "bob").
		Return(&domain.Grant{Level: domain.PermissionRead}, nil)
	store.DocumentRepo.On("GetByID", mock.Anything, "e1", "d1").
		Return(&domain.Document{EnterpriseID: "e1", ID: "d1", IsActive: true}, nil)
	store.AuditRepo.On("NextSequence", mock.Anything, "e1", "d1").Return(int64(6), nil)
	store.AuditRepo.On("Append", mock.Anything, mock.MatchedBy(func(entry *domain.AuditEntry) bool {
		return entry.Action == domain.ActionAccess && entry.UserID == "bob" && entry.Sequence == 6
	})).Return(nil)

	err := svc.RecordAccess(context.Background(), "e1", "d1", "bob")

	assert.NoError(t, err)
	store.AuditRepo.AssertExpectations(t)
}

func TestAccessService_RecordAccess_DeniedLeavesNoTrace(t *testing.T) {
	store := mocks.NewStubStore()
	svc := service.NewAccessService(store)

	store.EnterpriseRepo.On("GetByID", mock.Anything, "e1").
		Return(&domain.Enterprise{ID: "e1", Owner: "alice"}, nil)
	store.GrantRepo.On("GetByDocumentAndUser", mock.Anything, "e1", "d1", "mallory").
		Return(nil, domain.ErrNotFound)

	err := svc.RecordAccess(context.Background(), "e1", "d1", "mallory")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	store.AuditRepo.AssertNotCalled(t, "NextSequence", mock.Anything, mock.Anything, mock.Anything)
	store.AuditRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestAccessService_ListGrants_RequiresManage(t *testing.T) {
	store := mocks.NewStubStore()
	svc := service.NewAccessService(store)

	store.EnterpriseRepo.On("GetByID", mock.Anything, "e1").
		Return(&domain.Enterprise{ID: "e1", Owner: "alice"}, nil)
	store.GrantRepo.On("GetByDocumentAndUser", mock.Anything, "e1", "d1", "bob").
		Return(&domain.Grant{Level: domain.PermissionRead}, nil)

	_, _, err := svc.ListGrants(context.Background(), "e1", "d1", "bob", 0, 20)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAccessService_ListGrants_Owner(t *testing.T) {
	store := mocks.NewStubStore()
	svc := service.NewAccessService(store)
	stubOwnedDocument(store)

	grants := []domain.Grant{{EnterpriseID: "e1", DocumentID: "d1", UserID: "bob", Level: domain.PermissionRead}}
	store.GrantRepo.On("ListByDocument", mock.Anything, "e1", "d1", 0, 20).Return(grants, 1, nil)

	got, total, err := svc.ListGrants(context.Background(), "e1", "d1", "alice", 0, 20)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, grants, got)
}

func TestAccessService_GetAuditEntry(t *testing.T) {
	store := mocks.NewStubStore()
	svc := service.NewAccessService(store)

	store.EnterpriseRepo.On("GetByID", mock.Anything, "e1").
		Return(&domain.Enterprise{ID: "e1", Owner: "alice"}, nil)
	store.AuditRepo.On("GetBySequence", mock.Anything, "e1", "d1", int64(3)).
		Return(&domain.AuditEntry{EnterpriseID: "e1", DocumentID: "d1", Sequence: 3, Action: domain.ActionShare}, nil)
	store.AuditRepo.On("GetBySequence", mock.Anything, "e1", "d1", int64(99)).
		Return(nil, domain.ErrNotFound)

	entry, err := svc.GetAuditEntry(context.Background(), "e1", "d1", "alice", 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), entry.Sequence)

	_, err = svc.GetAuditEntry(context.Background(), "e1", "d1", "alice", 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccessService_ListAuditTrail_RequiresManage(t *testing.T) {
	store := mocks.NewStubStore()
	svc := service.NewAccessService(store)

	store.EnterpriseRepo.On("GetByID", mock.Anything, "e1").
		Return(&domain.Enterprise{ID: "e1", Owner: "alice"}, nil)
	store.GrantRepo.On("GetByDocumentAndUser", mock.Anything, "e1", "d1", "bob").
		Return(&domain.Grant{Level: domain.PermissionModify}, nil)

	_, _, err := svc.ListAuditTrail(context.Background(), "e1", "d1", "bob", 0, 20)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	store.AuditRepo.AssertNotCalled(t, "ListByDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
