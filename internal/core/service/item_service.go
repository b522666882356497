package service

import (
	"context"
	"time"

	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
)

// ItemService implements item management.
type ItemService struct {
	items ports.ItemRepository
}

func NewItemService(items ports.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

func (s *ItemService) Create(ctx context.Context, in ports.CreateItemInput) (string, error) {
	if existing, err := s.items.FindByCode(ctx, in.Code); err == nil && existing != nil {
		return "", domain.Conflict("code", "item already exists")
	}

	now := time.Now().UTC()
	return s.items.Insert(ctx, &domain.Item{
		Name:       in.Name,
		Code:       in.Code,
		IsDisabled: in.IsDisabled,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.items.FindAll(ctx)
}

func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("item", "item not found")
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, id string, in ports.UpdateItemInput) (*domain.Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Code != nil {
		item.Code = *in.Code
	}
	if in.IsDisabled != nil {
		item.IsDisabled = *in.IsDisabled
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}
