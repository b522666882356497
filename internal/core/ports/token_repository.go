package ports

import (
	"context"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

// TokenRepository persists refresh-token records in the tokens collection.
type TokenRepository interface {
	Insert(ctx context.Context, record *domain.TokenRecord) (string, error)
	// Find looks up a non-blacklisted record by its exact token string,
	// type and owning user id.
	Find(ctx context.Context, tokenString string, typ domain.TokenType, userID string) (*domain.TokenRecord, error)
	// DeleteByID removes a record and returns the deleted count. Rotation
	// correctness relies on this being a single atomic operation.
	DeleteByID(ctx context.Context, id string) (int64, error)
}
