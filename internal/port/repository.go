package port

import (
	"context"

	"docvault/internal/domain"
)

// EnterpriseRepository defines the contract for enterprise persistence.
type EnterpriseRepository interface {
	// Create inserts a new enterprise, returning domain.ErrDuplicateEnterprise
	// if the id is already registered.
	Create(ctx context.Context, enterprise *domain.Enterprise) error
	GetByID(ctx context.Context, id string) (*domain.Enterprise, error)
}

// DocumentRepository defines the contract for document persistence. Records
// are returned regardless of the soft-delete flag; callers filter as needed.
type DocumentRepository interface {
	// Create inserts a new document, returning domain.ErrDuplicateDocument if
	// (enterpriseID, id) already has a record, active or soft-deleted.
	Create(ctx context.Context, document *domain.Document) error
	GetByID(ctx context.Context, enterpriseID, documentID string) (*domain.Document, error)
	Update(ctx context.Context, document *domain.Document) error
	ListByEnterprise(ctx context.Context, enterpriseID string, offset, limit int) ([]domain.Document, int, error)
}

// GrantRepository defines the contract for explicit permission grants.
type GrantRepository interface {
	// Upsert stores the grant, overwriting any prior grant for the same
	// (enterprise, document, user).
	Upsert(ctx context.Context, grant *domain.Grant) error
	GetByDocumentAndUser(ctx context.Context, enterpriseID, documentID, userID string) (*domain.Grant, error)
	// Delete removes the grant, returning domain.ErrNotFound when none exists.
	Delete(ctx context.Context, enterpriseID, documentID, userID string) error
	ListByDocument(ctx context.Context, enterpriseID, documentID string, offset, limit int) ([]domain.Grant, int, error)
}

// AuditLogRepository defines the contract for the append-only audit log.
// There is deliberately no update or delete path on entries.
type AuditLogRepository interface {
	// NextSequence atomically allocates the next sequence number for the
	// (enterprise, document) pair, starting at 1. Concurrent callers on the
	// same pair never receive the same value.
	NextSequence(ctx context.Context, enterpriseID, documentID string) (int64, error)
	Append(ctx context.Context, entry *domain.AuditEntry) error
	GetBySequence(ctx context.Context, enterpriseID, documentID string, sequence int64) (*domain.AuditEntry, error)
	ListByDocument(ctx context.Context, enterpriseID, documentID string, offset, limit int) ([]domain.AuditEntry, int, error)
}

// Repositories bundles the four table contracts behind one accessor set so
// services can run against either the live store or a transaction.
type Repositories interface {
	Enterprises() EnterpriseRepository
	Documents() DocumentRepository
	Grants() GrantRepository
	Audit() AuditLogRepository
}

// Store is the durable state store. Atomic runs fn against a repository set
// whose writes all commit together or not at all; every top-level mutating
// operation executes inside exactly one Atomic call.
type Store interface {
	Repositories
	Atomic(ctx context.Context, fn func(r Repositories) error) error
}
