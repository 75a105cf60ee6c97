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

type enterpriseRepo struct {
	ext sqlx.ExtContext
}

func (r *enterpriseRepo) Create(ctx context.Context, enterprise *domain.Enterprise) error {
	query := `INSERT INTO enterprises (id, name, owner, is_active, registered_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.ext.ExecContext(ctx, query,
		enterprise.ID, enterprise.Name, enterprise.Owner, enterprise.IsActive, enterprise.RegisteredAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateEnterprise
		}
		return fmt.Errorf("enterpriseRepo.Create: %w", err)
	}
	return nil
}

func (r *enterpriseRepo) GetByID(ctx context.Context, id string) (*domain.Enterprise, error) {
	var enterprise domain.Enterprise
	err := sqlx.GetContext(ctx, r.ext, &enterprise,
		"SELECT * FROM enterprises WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("enterpriseRepo.GetByID: %w", err)
	}
	return &enterprise, nil
}
