package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"docvault/internal/port"
)

// Store is the PostgreSQL-backed state store. Repositories obtained from
// the store itself run in auto-commit mode; Atomic binds them to a single
// transaction so each top-level operation commits all of its mutations and
// its audit append together, or none of them.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a PostgreSQL-backed Store.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Enterprises() port.EnterpriseRepository {
	return &enterpriseRepo{ext: s.db}
}

func (s *Store) Documents() port.DocumentRepository {
	return &documentRepo{ext: s.db}
}

func (s *Store) Grants() port.GrantRepository {
	return &grantRepo{ext: s.db}
}

func (s *Store) Audit() port.AuditLogRepository {
	return &auditLogRepo{ext: s.db}
}

// Atomic runs fn inside one database transaction.
func (s *Store) Atomic(ctx context.Context, fn func(r port.Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(&txRepositories{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rolling back after %v: %w", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

type txRepositories struct {
	tx *sqlx.Tx
}

func (t *txRepositories) Enterprises() port.EnterpriseRepository {
	return &enterpriseRepo{ext: t.tx}
}

func (t *txRepositories) Documents() port.DocumentRepository {
	return &documentRepo{ext: t.tx}
}

func (t *txRepositories) Grants() port.GrantRepository {
	return &grantRepo{ext: t.tx}
}

func (t *txRepositories) Audit() port.AuditLogRepository {
	return &auditLogRepo{ext: t.tx}
}
