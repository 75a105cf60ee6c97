package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"docvault/internal/domain"
	"docvault/internal/port"
)

// GrantInput is the DTO for granting document access.
type GrantInput struct {
	EnterpriseID string
	DocumentID   string
	GrantorID    string
	GranteeID    string
	Level        domain.PermissionLevel
}

// AccessService orchestrates grant, revoke, and auditable read access.
type AccessService interface {
	Grant(ctx context.Context, input *GrantInput) error
	Revoke(ctx context.Context, enterpriseID, documentID, grantorID, granteeID string) error
	RecordAccess(ctx context.Context, enterpriseID, documentID, callerID string) error
	ListGrants(ctx context.Context, enterpriseID, documentID, callerID string, offset, limit int) ([]domain.Grant, int, error)
	GetAuditEntry(ctx context.Context, enterpriseID, documentID, callerID string, sequence int64) (*domain.AuditEntry, error)
	ListAuditTrail(ctx context.Context, enterpriseID, documentID, callerID string, offset, limit int) ([]domain.AuditEntry, int, error)
}

type accessService struct {
	store port.Store
}

// NewAccessService creates a new AccessService implementation.
func NewAccessService(store port.Store) AccessService {
	return &accessService{store: store}
}

// Grant upserts an explicit grant for the grantee and records a SHARE audit
// entry. Levels outside [read, full] are rejected; granting "none" is not a
// supported way to remove access.
func (s *accessService) Grant(ctx context.Context, input *GrantInput) error {
	if err := domain.ValidateID("grantee", input.GranteeID); err != nil {
		return err
	}

	err := s.store.Atomic(ctx, func(r port.Repositories) error {
		resolver := NewPermissionResolver(r)
		if err := resolver.Require(ctx, input.EnterpriseID, input.DocumentID, input.GrantorID, domain.PermissionManage); err != nil {
			return err
		}
		if _, err := r.Documents().GetByID(ctx, input.EnterpriseID, input.DocumentID); err != nil {
			return err
		}
		if !input.Level.Grantable() {
			return domain.ErrInvalidPermission
		}

		grant := &domain.Grant{
			EnterpriseID: input.EnterpriseID,
			DocumentID:   input.DocumentID,
			UserID:       input.GranteeID,
			Level:        input.Level,
			GrantedBy:    input.GrantorID,
			GrantedAt:    time.Now().UTC(),
		}
		if err := r.Grants().Upsert(ctx, grant); err != nil {
			return err
		}

		return appendAudit(ctx, r, input.EnterpriseID, input.DocumentID, input.GrantorID,
			domain.ActionShare, fmt.Sprintf("granted %s to %s", input.Level, input.GranteeID))
	})
	if err != nil {
		return err
	}

	log.Printf("accessService.Grant: %s granted %s on %s/%s to %s",
		input.GrantorID, input.Level, input.EnterpriseID, input.DocumentID, input.GranteeID)
	return nil
}

// Revoke removes the grantee's explicit grant if one exists. Revoking a
// missing grant still succeeds and still records a SHARE audit entry. The
// enterprise owner's access survives any revoke because the resolver's
// owner check never consults the grant table.
func (s *accessService) Revoke(ctx context.Context, enterpriseID, documentID, grantorID, granteeID string) error {
	return s.store.Atomic(ctx, func(r port.Repositories) error {
		resolver := NewPermissionResolver(r)
		if err := resolver.Require(ctx, enterpriseID, documentID, grantorID, domain.PermissionManage); err != nil {
			return err
		}
		if _, err := r.Documents().GetByID(ctx, enterpriseID, documentID); err != nil {
			return err
		}

		if err := r.Grants().Delete(ctx, enterpriseID, documentID, granteeID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		return appendAudit(ctx, r, enterpriseID, documentID, grantorID,
			domain.ActionShare, fmt.Sprintf("revoked access from %s", granteeID))
	})
}

// RecordAccess appends an ACCESS audit entry and mutates nothing else. It
// exists purely to leave an auditable record of a read. Failed authorization
// checks are never logged.
func (s *accessService) RecordAccess(ctx context.Context, enterpriseID, documentID, callerID string) error {
	return s.store.Atomic(ctx, func(r port.Repositories) error {
		resolver := NewPermissionResolver(r)
		if err := resolver.Require(ctx, enterpriseID, documentID, callerID, domain.PermissionRead); err != nil {
			return err
		}
		if _, err := r.Documents().GetByID(ctx, enterpriseID, documentID); err != nil {
			return err
		}

		return appendAudit(ctx, r, enterpriseID, documentID, callerID,
			domain.ActionAccess, "document accessed")
	})
}

func (s *accessService) ListGrants(ctx context.Context, enterpriseID, documentID, callerID string, offset, limit int) ([]domain.Grant, int, error) {
	resolver := NewPermissionResolver(s.store)
	if err := resolver.Require(ctx, enterpriseID, documentID, callerID, domain.PermissionManage); err != nil {
		return nil, 0, err
	}
	if _, err := s.store.Documents().GetByID(ctx, enterpriseID, documentID); err != nil {
		return nil, 0, err
	}
	return s.store.Grants().ListByDocument(ctx, enterpriseID, documentID, offset, limit)
}

func (s *accessService) GetAuditEntry(ctx context.Context, enterpriseID, documentID, callerID string, sequence int64) (*domain.AuditEntry, error) {
	resolver := NewPermissionResolver(s.store)
	if err := resolver.Require(ctx, enterpriseID, documentID, callerID, domain.PermissionManage); err != nil {
		return nil, err
	}
	return s.store.Audit().GetBySequence(ctx, enterpriseID, documentID, sequence)
}

func (s *accessService) ListAuditTrail(ctx context.Context, enterpriseID, documentID, callerID string, offset, limit int) ([]domain.AuditEntry, int, error) {
	resolver := NewPermissionResolver(s.store)
	if err := resolver.Require(ctx, enterpriseID, documentID, callerID, domain.PermissionManage); err != nil {
		return nil, 0, err
	}
	return s.store.Audit().ListByDocument(ctx, enterpriseID, documentID, offset, limit)
}
