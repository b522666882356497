package ports

import (
	"context"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

// TokenService manages the access/refresh token lifecycle.
type TokenService interface {
	// IssueAuthTokens mints a fresh access+refresh pair for userID and
	// persists the refresh token.
	IssueAuthTokens(ctx context.Context, userID string) (*domain.AuthTokens, error)
	// VerifyToken decodes a token string and resolves it to its persisted
	// record. A valid signature without a matching record is Unauthorized:
	// a rotated or deleted token must never be trusted again.
	VerifyToken(ctx context.Context, tokenString string, typ domain.TokenType) (*domain.TokenRecord, error)
	// RotateRefreshToken deletes the old persisted refresh record by id
	// and returns the deleted count.
	RotateRefreshToken(ctx context.Context, recordID string) (int64, error)
}
