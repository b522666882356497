package ports

import (
	"context"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

// UserRepository persists user documents and their audit history.
type UserRepository interface {
	// Insert stores a new user and returns its generated id. A duplicate
	// email yields a Conflict domain error.
	Insert(ctx context.Context, user *domain.User) (string, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	// Update replaces the mutable fields of an existing user document.
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	// AppendHistory writes one audit snapshot. History is append-only.
	AppendHistory(ctx context.Context, entry *domain.UserHistory) error
}
