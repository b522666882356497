package service

import (
	"context"
	"time"

	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
)

// ProductService implements product management. Products reference an
// organization and require it to exist.
type ProductService struct {
	products ports.ProductRepository
	orgs     ports.OrganizationRepository
}

func NewProductService(products ports.ProductRepository, orgs ports.OrganizationRepository) *ProductService {
	return &ProductService{products: products, orgs: orgs}
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (string, error) {
	if existing, err := s.products.FindByName(ctx, in.Name); err == nil && existing != nil {
		return "", domain.Conflict("name", "product already exists")
	}
	if org, err := s.orgs.FindByID(ctx, in.OrganizationID); err != nil || org == nil {
		return "", domain.NotFound("organization", "organization not found")
	}

	now := time.Now().UTC()
	return s.products.Insert(ctx, &domain.Product{
		Name:           in.Name,
		Code:           in.Code,
		OrganizationID: in.OrganizationID,
		Cost:           in.Cost,
		Price:          in.Price,
		IsDisabled:     false,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("product", "product not found")
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Code != nil {
		product.Code = *in.Code
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.IsDisabled != nil {
		product.IsDisabled = *in.IsDisabled
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}
