package ports

import (
	"context"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted on user creation.
type CreateUserInput struct {
	Name       string
	Email      string
	Password   string
	Role       domain.Role
	IsDisabled bool
}

// UpdateUserInput carries the optional fields of a user update. Nil means
// "leave unchanged".
type UpdateUserInput struct {
	Name       *string
	Email      *string
	Role       *domain.Role
	IsDisabled *bool
}

// UserService implements user management on top of the credential store.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (string, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// Update applies in to the user identified by id on behalf of actor,
	// enforcing the role-change rank guard.
	Update(ctx context.Context, id string, actor *domain.User, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
