package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"docvault/internal/domain"
)

type grantRepo struct {
	ext sqlx.ExtContext
}

func (r *grantRepo) Upsert(ctx context.Context, grant *domain.Grant) error {
	query := `INSERT INTO document_grants (enterprise_id, document_id, user_id, level, granted_by, granted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (enterprise_id, document_id, user_id)
		DO UPDATE SET level = EXCLUDED.level, granted_by = EXCLUDED.granted_by, granted_at = EXCLUDED.granted_at`

	_, err := r.ext.ExecContext(ctx, query,
		grant.EnterpriseID, grant.DocumentID, grant.UserID,
		int(grant.Level), grant.GrantedBy, grant.GrantedAt)
	if err != nil {
		return fmt.Errorf("grantRepo.Upsert: %w", err)
	}
	return nil
}

func (r *grantRepo) GetByDocumentAndUser(ctx context.Context, enterpriseID, documentID, userID string) (*domain.Grant, error) {
	var grant domain.Grant
	err := sqlx.GetContext(ctx, r.ext, &grant,
		`SELECT * FROM document_grants
		 WHERE enterprise_id = $1 AND document_id = $2 AND user_id = $3`,
		enterpriseID, documentID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("grantRepo.GetByDocumentAndUser: %w", err)
	}
	return &grant, nil
}

func (r *grantRepo) Delete(ctx context.Context, enterpriseID, documentID, userID string) error {
	result, err := r.ext.ExecContext(ctx,
		`DELETE FROM document_grants
		 WHERE enterprise_id = $1 AND document_id = $2 AND user_id = $3`,
		enterpriseID, documentID, userID)
	if err != nil {
		return fmt.Errorf("grantRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *grantRepo) ListByDocument(ctx context.Context, enterpriseID, documentID string, offset, limit int) ([]domain.Grant, int, error) {
	var total int
	err := sqlx.GetContext(ctx, r.ext, &total,
		"SELECT COUNT(*) FROM document_grants WHERE enterprise_id = $1 AND document_id = $2",
		enterpriseID, documentID)
	if err != nil {
		return nil, 0, fmt.Errorf("grantRepo.ListByDocument count: %w", err)
	}

	var grants []domain.Grant
	err = sqlx.SelectContext(ctx, r.ext, &grants,
		`SELECT * FROM document_grants
		 WHERE enterprise_id = $1 AND document_id = $2
		 ORDER BY granted_at ASC, user_id ASC
		 LIMIT $3 OFFSET $4`,
		enterpriseID, documentID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("grantRepo.ListByDocument: %w", err)
	}
	return grants, total, nil
}
