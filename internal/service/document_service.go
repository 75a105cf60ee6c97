package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"docvault/internal/domain"
	"docvault/internal/port"
)

// CreateDocumentInput is the DTO for registering a document.
type CreateDocumentInput struct {
	EnterpriseID string
	DocumentID   string
	Name         string
	Description  string
	DocumentType string
	ContentHash  domain.ContentHash
	CallerID     string
}

// UpdateDocumentInput is the DTO for updating document metadata.
type UpdateDocumentInput struct {
	EnterpriseID string
	DocumentID   string
	Name         string
	Description  string
	DocumentType string
	ContentHash  domain.ContentHash
	CallerID     string
}

// DocumentService defines the document registry contract.
type DocumentService interface {
	Create(ctx context.Context, input *CreateDocumentInput) (*domain.Document, error)
	Update(ctx context.Context, input *UpdateDocumentInput) (*domain.Document, error)
	SoftDelete(ctx context.Context, enterpriseID, documentID, callerID string) error
	Get(ctx context.Context, enterpriseID, documentID string) (*domain.Document, error)
	List(ctx context.Context, enterpriseID, callerID string, offset, limit int) ([]domain.Document, int, error)
}

type documentService struct {
	store port.Store
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(store port.Store) DocumentService {
	return &documentService{store: store}
}

func validateDocumentMetadata(name, description, documentType string, hash domain.ContentHash) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}
	if err := domain.ValidateDescription(description); err != nil {
		return err
	}
	if err := domain.ValidateDocumentType(documentType); err != nil {
		return err
	}
	return domain.ValidateContentHash(hash)
}

// Create registers a document under the enterprise. Creation is owner-only,
// a stricter check than the modify-level gate used for updates. The creator
// receives an explicit full grant and one CREATE audit entry is recorded.
// Soft-deleted ids stay reserved: a create on one fails as a duplicate.
func (s *documentService) Create(ctx context.Context, input *CreateDocumentInput) (*domain.Document, error) {
	if err := domain.ValidateID("enterprise_id", input.EnterpriseID); err != nil {
		return nil, err
	}
	if err := domain.ValidateID("document_id", input.DocumentID); err != nil {
		return nil, err
	}
	if err := validateDocumentMetadata(input.Name, input.Description, input.DocumentType, input.ContentHash); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	document := &domain.Document{
		EnterpriseID: input.EnterpriseID,
		ID:           input.DocumentID,
		Name:         input.Name,
		Description:  input.Description,
		ContentHash:  input.ContentHash,
		DocumentType: input.DocumentType,
		Version:      1,
		IsActive:     true,
		CreatedAt:    now,
		LastUpdated:  now,
	}

	err := s.store.Atomic(ctx, func(r port.Repositories) error {
		enterprise, err := r.Enterprises().GetByID(ctx, input.EnterpriseID)
		if err != nil {
			return err
		}
		if enterprise.Owner != input.CallerID {
			return domain.ErrUnauthorized
		}

		if err := r.Documents().Create(ctx, document); err != nil {
			return err
		}

		creatorGrant := &domain.Grant{
			EnterpriseID: input.EnterpriseID,
			DocumentID:   input.DocumentID,
			UserID:       input.CallerID,
			Level:        domain.PermissionFull,
			GrantedBy:    input.CallerID,
			GrantedAt:    now,
		}
		if err := r.Grants().Upsert(ctx, creatorGrant); err != nil {
			return fmt.Errorf("granting creator access: %w", err)
		}

		return appendAudit(ctx, r, input.EnterpriseID, input.DocumentID, input.CallerID,
			domain.ActionCreate, "document created")
	})
	if err != nil {
		return nil, err
	}

	log.Printf("documentService.Create: created document %s/%s by %s",
		input.EnterpriseID, input.DocumentID, input.CallerID)
	return document, nil
}

// Update replaces the document metadata, bumping the version by exactly one
// and preserving the creation timestamp. An update implicitly un-deletes.
func (s *documentService) Update(ctx context.Context, input *UpdateDocumentInput) (*domain.Document, error) {
	if err := validateDocumentMetadata(input.Name, input.Description, input.DocumentType, input.ContentHash); err != nil {
		return nil, err
	}

	var updated *domain.Document
	err := s.store.Atomic(ctx, func(r port.Repositories) error {
		document, err := r.Documents().GetByID(ctx, input.EnterpriseID, input.DocumentID)
		if err != nil {
			return err
		}

		resolver := NewPermissionResolver(r)
		if err := resolver.Require(ctx, input.EnterpriseID, input.DocumentID, input.CallerID, domain.PermissionModify); err != nil {
			return err
		}

		document.Name = input.Name
		document.Description = input.Description
		document.ContentHash = input.ContentHash
		document.DocumentType = input.DocumentType
		document.Version++
		document.IsActive = true
		document.LastUpdated = time.Now().UTC()

		if err := r.Documents().Update(ctx, document); err != nil {
			return err
		}
		updated = document

		return appendAudit(ctx, r, input.EnterpriseID, input.DocumentID, input.CallerID,
			domain.ActionUpdate, fmt.Sprintf("document updated to version %d", document.Version))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SoftDelete clears the active flag and nothing else; the version does not
// change and the id stays reserved forever. The audit entry carries action
// UPDATE with the deletion noted in the details, matching the historical
// behavior of this log.
func (s *documentService) SoftDelete(ctx context.Context, enterpriseID, documentID, callerID string) error {
	return s.store.Atomic(ctx, func(r port.Repositories) error {
		document, err := r.Documents().GetByID(ctx, enterpriseID, documentID)
		if err != nil {
			return err
		}

		resolver := NewPermissionResolver(r)
		if err := resolver.Require(ctx, enterpriseID, documentID, callerID, domain.PermissionManage); err != nil {
			return err
		}

		document.IsActive = false
		if err := r.Documents().Update(ctx, document); err != nil {
			return err
		}

		return appendAudit(ctx, r, enterpriseID, documentID, callerID,
			domain.ActionUpdate, "document soft-deleted")
	})
}

// Get returns the document regardless of its soft-delete flag.
func (s *documentService) Get(ctx context.Context, enterpriseID, documentID string) (*domain.Document, error) {
	return s.store.Documents().GetByID(ctx, enterpriseID, documentID)
}

// List returns the enterprise's documents. Listing is owner-only: there is
// no enterprise-wide grant to filter per-document visibility against.
func (s *documentService) List(ctx context.Context, enterpriseID, callerID string, offset, limit int) ([]domain.Document, int, error) {
	enterprise, err := s.store.Enterprises().GetByID(ctx, enterpriseID)
	if err != nil {
		return nil, 0, err
	}
	if enterprise.Owner != callerID {
		return nil, 0, domain.ErrUnauthorized
	}
	return s.store.Documents().ListByEnterprise(ctx, enterpriseID, offset, limit)
}
