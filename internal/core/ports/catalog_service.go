package ports

import (
	"context"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

// CreateOrganizationInput carries the fields accepted on org creation.
type CreateOrganizationInput struct {
	Name string
}

// UpdateOrganizationInput carries the optional fields of an org update.
type UpdateOrganizationInput struct {
	Name       *string
	IsDisabled *bool
}

// OrganizationService implements organization management.
type OrganizationService interface {
	Create(ctx context.Context, in CreateOrganizationInput) (string, error)
	List(ctx context.Context) ([]domain.Organization, error)
	Get(ctx context.Context, id string) (*domain.Organization, error)
	Update(ctx context.Context, id string, in UpdateOrganizationInput) (*domain.Organization, error)
	Delete(ctx context.Context, id string) error
}

// CreateProductInput carries the fields accepted on product creation.
type CreateProductInput struct {
	Name           string
	Code           string
	OrganizationID string
	Cost           float64
	Price          float64
}

// UpdateProductInput carries the optional fields of a product update.
type UpdateProductInput struct {
	Name       *string
	Code       *string
	Cost       *float64
	Price      *float64
	IsDisabled *bool
}

// ProductService implements product management.
type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (string, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// CreateItemInput carries the fields accepted on item creation.
type CreateItemInput struct {
	Name       string
	Code       string
	IsDisabled bool
}

// UpdateItemInput carries the optional fields of an item update.
type UpdateItemInput struct {
	Name       *string
	Code       *string
	IsDisabled *bool
}

// ItemService implements item management.
type ItemService interface {
	Create(ctx context.Context, in CreateItemInput) (string, error)
	List(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	Update(ctx context.Context, id string, in UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
}
