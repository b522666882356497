package ports

import (
	"context"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

// OrganizationRepository persists organization documents.
type OrganizationRepository interface {
	Insert(ctx context.Context, org *domain.Organization) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Organization, error)
	FindByName(ctx context.Context, name string) (*domain.Organization, error)
	FindAll(ctx context.Context) ([]domain.Organization, error)
	Update(ctx context.Context, org *domain.Organization) error
	Delete(ctx context.Context, id string) error
}

// ProductRepository persists product documents.
type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// ItemRepository persists item documents.
type ItemRepository interface {
	Insert(ctx context.Context, item *domain.Item) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	FindByCode(ctx context.Context, code string) (*domain.Item, error)
	FindAll(ctx context.Context) ([]domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id string) error
}
