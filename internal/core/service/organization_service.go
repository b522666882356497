package service

import (
	"context"
	"time"

	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
)

// OrganizationService implements organization management. Organizations
// carry a docVersion like users, bumped on every update.
type OrganizationService struct {
	orgs ports.OrganizationRepository
}

func NewOrganizationService(orgs ports.OrganizationRepository) *OrganizationService {
	return &OrganizationService{orgs: orgs}
}

func (s *OrganizationService) Create(ctx context.Context, in ports.CreateOrganizationInput) (string, error) {
	if existing, err := s.orgs.FindByName(ctx, in.Name); err == nil && existing != nil {
		return "", domain.Conflict("name", "organization already exists")
	}

	now := time.Now().UTC()
	return s.orgs.Insert(ctx, &domain.Organization{
		Name:       in.Name,
		IsDisabled: false,
		DocVersion: 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (s *OrganizationService) List(ctx context.Context) ([]domain.Organization, error) {
	return s.orgs.FindAll(ctx)
}

func (s *OrganizationService) Get(ctx context.Context, id string) (*domain.Organization, error) {
	org, err := s.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.NotFound("organization", "organization not found")
	}
	return org, nil
}

func (s *OrganizationService) Update(ctx context.Context, id string, in ports.UpdateOrganizationInput) (*domain.Organization, error) {
	org, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		org.Name = *in.Name
	}
	if in.IsDisabled != nil {
		org.IsDisabled = *in.IsDisabled
	}
	org.DocVersion++
	org.UpdatedAt = time.Now().UTC()

	if err := s.orgs.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *OrganizationService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.orgs.Delete(ctx, id)
}
