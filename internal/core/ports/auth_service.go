package ports

import (
	"context"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

// AuthService orchestrates login and refresh.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.AuthTokens, *domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.AuthTokens, error)
}

// LoginThrottle limits failed login attempts per email. Implementations
// must be safe for concurrent use; a nil throttle disables limiting.
type LoginThrottle interface {
	// Allow reports whether another attempt for email is permitted.
	Allow(ctx context.Context, email string) (bool, error)
	// Fail records a failed attempt.
	Fail(ctx context.Context, email string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}
