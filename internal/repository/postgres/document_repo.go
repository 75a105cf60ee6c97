package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"docvault/internal/domain"
)

type documentRepo struct {
	ext sqlx.ExtContext
}

func (r *documentRepo) Create(ctx context.Context, document *domain.Document) error {
	query := `INSERT INTO documents
		(enterprise_id, id, name, description, content_hash, document_type, version, is_active, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.ext.ExecContext(ctx, query,
		document.EnterpriseID, document.ID, document.Name, document.Description,
		[]byte(document.ContentHash), document.DocumentType, document.Version,
		document.IsActive, document.CreatedAt, document.LastUpdated)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateDocument
		}
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, enterpriseID, documentID string) (*domain.Document, error) {
	var document domain.Document
	err := sqlx.GetContext(ctx, r.ext, &document,
		"SELECT * FROM documents WHERE enterprise_id = $1 AND id = $2",
		enterpriseID, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &document, nil
}

func (r *documentRepo) Update(ctx context.Context, document *domain.Document) error {
	query := `UPDATE documents
		SET name = $1, description = $2, content_hash = $3, document_type = $4,
		    version = $5, is_active = $6, last_updated = $7
		WHERE enterprise_id = $8 AND id = $9`

	result, err := r.ext.ExecContext(ctx, query,
		document.Name, document.Description, []byte(document.ContentHash),
		document.DocumentType, document.Version, document.IsActive,
		document.LastUpdated, document.EnterpriseID, document.ID)
	if err != nil {
		return fmt.Errorf("documentRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *documentRepo) ListByEnterprise(ctx context.Context, enterpriseID string, offset, limit int) ([]domain.Document, int, error) {
	var total int
	err := sqlx.GetContext(ctx, r.ext, &total,
		"SELECT COUNT(*) FROM documents WHERE enterprise_id = $1", enterpriseID)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByEnterprise count: %w", err)
	}

	var documents []domain.Document
	err = sqlx.SelectContext(ctx, r.ext, &documents,
		`SELECT * FROM documents
		 WHERE enterprise_id = $1
		 ORDER BY created_at ASC, id ASC
		 LIMIT $2 OFFSET $3`,
		enterpriseID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByEnterprise: %w", err)
	}
	return documents, total, nil
}
