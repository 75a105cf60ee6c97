package service

import (
	"context"
	"log"
	"time"

	"docvault/internal/domain"
	"docvault/internal/port"
)

// RegisterEnterpriseInput is the DTO for registering an enterprise.
type RegisterEnterpriseInput struct {
	EnterpriseID string
	Name         string
	CallerID     string
}

// EnterpriseService defines the tenant registry contract.
type EnterpriseService interface {
	Register(ctx context.Context, input *RegisterEnterpriseInput) (*domain.Enterprise, error)
	Lookup(ctx context.Context, enterpriseID string) (*domain.Enterprise, error)
}

type enterpriseService struct {
	store port.Store
}

// NewEnterpriseService creates a new EnterpriseService implementation.
func NewEnterpriseService(store port.Store) EnterpriseService {
	return &enterpriseService{store: store}
}

// Register creates the enterprise with the caller as its immutable owner and
// records one REGISTER audit entry under the enterprise's empty-document
// sentinel.
func (s *enterpriseService) Register(ctx context.Context, input *RegisterEnterpriseInput) (*domain.Enterprise, error) {
	if err := domain.ValidateID("enterprise_id", input.EnterpriseID); err != nil {
		return nil, err
	}
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateID("caller", input.CallerID); err != nil {
		return nil, err
	}

	enterprise := &domain.Enterprise{
		ID:           input.EnterpriseID,
		Name:         input.Name,
		Owner:        input.CallerID,
		IsActive:     true,
		RegisteredAt: time.Now().UTC(),
	}

	err := s.store.Atomic(ctx, func(r port.Repositories) error {
		if err := r.Enterprises().Create(ctx, enterprise); err != nil {
			return err
		}
		return appendAudit(ctx, r, enterprise.ID, "", input.CallerID,
			domain.ActionRegister, "enterprise registered")
	})
	if err != nil {
		return nil, err
	}

	log.Printf("enterpriseService.Register: registered enterprise %s owned by %s",
		enterprise.ID, enterprise.Owner)
	return enterprise, nil
}

func (s *enterpriseService) Lookup(ctx context.Context, enterpriseID string) (*domain.Enterprise, error) {
	return s.store.Enterprises().GetByID(ctx, enterpriseID)
}
