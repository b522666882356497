package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
	"github.com/tenantive/accounts-api/internal/pkg/token"
)

// TokenService implements the access/refresh token lifecycle. Access tokens
// are never persisted; refresh tokens are stored so rotation can invalidate
// them by deletion.
type TokenService struct {
	codec      *token.Codec
	tokens     ports.TokenRepository
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(codec *token.Codec, tokens ports.TokenRepository, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	return &TokenService{
		codec:      codec,
		tokens:     tokens,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAuthTokens mints an access+refresh pair for userID and persists the
// refresh token record.
func (s *TokenService) IssueAuthTokens(ctx context.Context, userID string) (*domain.AuthTokens, error) {
	if userID == "" {
		return nil, domain.NotFound("access_token", "userId is invalid")
	}

	accessToken, accessExpires, err := s.codec.Issue(userID, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refreshToken, refreshExpires, err := s.codec.Issue(userID, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	record := &domain.TokenRecord{
		Token:       refreshToken,
		UserID:      userID,
		Type:        domain.TokenRefresh,
		Expires:     refreshExpires,
		Blacklisted: false,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.tokens.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("persist refresh token: %w", err)
	}

	return &domain.AuthTokens{
		Access:  domain.TokenPair{Token: accessToken, Expires: accessExpires},
		Refresh: domain.TokenPair{Token: refreshToken, Expires: refreshExpires},
	}, nil
}

// VerifyToken decodes tokenString and resolves it against the persisted
// record for (token, type, subject). A verifiable signature without a
// persisted record is rejected: rotated and deleted tokens stay dead.
func (s *TokenService) VerifyToken(ctx context.Context, tokenString string, typ domain.TokenType) (*domain.TokenRecord, error) {
	path := fmt.Sprintf("%s_token", typ)

	claims, err := s.codec.Verify(tokenString)
	if err != nil {
		return nil, domain.Unauthorized(path, fmt.Sprintf("%s_token is invalid", typ))
	}

	record, err := s.tokens.Find(ctx, tokenString, typ, claims.SubjectID)
	if err != nil || record == nil || record.Blacklisted {
		return nil, domain.Unauthorized(path, fmt.Sprintf("%s_token is invalid", typ))
	}
	return record, nil
}

// RotateRefreshToken deletes the old persisted refresh record. Two
// concurrent rotations of the same token race on this delete; the loser
// sees a zero count and fails, which gives at-most-once rotation without
// locks.
func (s *TokenService) RotateRefreshToken(ctx context.Context, recordID string) (int64, error) {
	if recordID == "" {
		return 0, domain.NotFound("token", "token not found")
	}
	deleted, err := s.tokens.DeleteByID(ctx, recordID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, domain.NotFound("refresh_token", "refresh_token not found")
	}
	return deleted, nil
}
