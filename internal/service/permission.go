package service

import (
	"context"
	"errors"
	"fmt"

	"docvault/internal/domain"
	"docvault/internal/port"
)

// PermissionResolver computes a user's effective permission level on a
// document. It is the single gate consulted by every mutating operation.
type PermissionResolver interface {
	EffectivePermission(ctx context.Context, enterpriseID, documentID, userID string) (domain.PermissionLevel, error)
	Require(ctx context.Context, enterpriseID, documentID, userID string, min domain.PermissionLevel) error
}

type permissionResolver struct {
	repos port.Repositories
}

// NewPermissionResolver creates a resolver over the given repository set.
// Construct it over a transaction's repositories to resolve inside that
// transaction.
func NewPermissionResolver(repos port.Repositories) PermissionResolver {
	return &permissionResolver{repos: repos}
}

// EffectivePermission returns none when the enterprise does not exist, full
// when the user is the enterprise owner, and otherwise the stored grant
// level (or none). The owner check is unconditional and independent of the
// grant table, which is what makes owner access unrevocable.
func (r *permissionResolver) EffectivePermission(ctx context.Context, enterpriseID, documentID, userID string) (domain.PermissionLevel, error) {
	enterprise, err := r.repos.Enterprises().GetByID(ctx, enterpriseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.PermissionNone, nil
		}
		return domain.PermissionNone, fmt.Errorf("resolving enterprise: %w", err)
	}
	if enterprise.Owner == userID {
		return domain.PermissionFull, nil
	}

	grant, err := r.repos.Grants().GetByDocumentAndUser(ctx, enterpriseID, documentID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.PermissionNone, nil
		}
		return domain.PermissionNone, fmt.Errorf("resolving grant: %w", err)
	}
	return grant.Level, nil
}

// Require fails with domain.ErrUnauthorized when the user's effective
// permission is below min.
func (r *permissionResolver) Require(ctx context.Context, enterpriseID, documentID, userID string, min domain.PermissionLevel) error {
	effective, err := r.EffectivePermission(ctx, enterpriseID, documentID, userID)
	if err != nil {
		return err
	}
	if effective < min {
		return domain.ErrUnauthorized
	}
	return nil
}
