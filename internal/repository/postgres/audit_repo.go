package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"docvault/internal/domain"
)

// auditLogRepo is insert-and-read only. Audit entries are never updated or
// deleted, so no such statements exist here.
type auditLogRepo struct {
	ext sqlx.ExtContext
}

// NextSequence allocates the next sequence number for the pair with a single
// atomic upsert. The row stores the value to hand out next, so two callers
// racing on the same pair serialize on the row lock and never collide.
func (r *auditLogRepo) NextSequence(ctx context.Context, enterpriseID, documentID string) (int64, error) {
	query := `INSERT INTO audit_counters (enterprise_id, document_id, next_sequence)
		VALUES ($1, $2, 2)
		ON CONFLICT (enterprise_id, document_id)
		DO UPDATE SET next_sequence = audit_counters.next_sequence + 1
		RETURNING next_sequence - 1`

	var sequence int64
	err := sqlx.GetContext(ctx, r.ext, &sequence, query, enterpriseID, documentID)
	if err != nil {
		return 0, fmt.Errorf("auditLogRepo.NextSequence: %w", err)
	}
	return sequence, nil
}

func (r *auditLogRepo) Append(ctx context.Context, entry *domain.AuditEntry) error {
	query := `INSERT INTO audit_entries
		(id, enterprise_id, document_id, sequence, user_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.ext.ExecContext(ctx, query,
		entry.ID, entry.EnterpriseID, entry.DocumentID, entry.Sequence,
		entry.UserID, entry.Action, entry.Details, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("auditLogRepo.Append: %w", err)
	}
	return nil
}

func (r *auditLogRepo) GetBySequence(ctx context.Context, enterpriseID, documentID string, sequence int64) (*domain.AuditEntry, error) {
	var entry domain.AuditEntry
	err := sqlx.GetContext(ctx, r.ext, &entry,
		`SELECT * FROM audit_entries
		 WHERE enterprise_id = $1 AND document_id = $2 AND sequence = $3`,
		enterpriseID, documentID, sequence)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("auditLogRepo.GetBySequence: %w", err)
	}
	return &entry, nil
}

func (r *auditLogRepo) ListByDocument(ctx context.Context, enterpriseID, documentID string, offset, limit int) ([]domain.AuditEntry, int, error) {
	var total int
	err := sqlx.GetContext(ctx, r.ext, &total,
		"SELECT COUNT(*) FROM audit_entries WHERE enterprise_id = $1 AND document_id = $2",
		enterpriseID, documentID)
	if err != nil {
		return nil, 0, fmt.Errorf("auditLogRepo.ListByDocument count: %w", err)
	}

	var entries []domain.AuditEntry
	err = sqlx.SelectContext(ctx, r.ext, &entries,
		`SELECT * FROM audit_entries
		 WHERE enterprise_id = $1 AND document_id = $2
		 ORDER BY sequence ASC
		 LIMIT $3 OFFSET $4`,
		enterpriseID, documentID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("auditLogRepo.ListByDocument: %w", err)
	}
	return entries, total, nil
}
