package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
	"github.com/tenantive/accounts-api/internal/pkg/hash"
)

// loginFailedMessage is returned for every login failure. Unknown email,
// disabled account and wrong password are indistinguishable so callers
// cannot enumerate accounts.
const loginFailedMessage = "email or password is not correct"

// AuthService implements login and refresh-token rotation.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	throttle ports.LoginThrottle
	log      zerolog.Logger
}

// NewAuthService builds an AuthService. throttle may be nil, which disables
// login attempt limiting.
func NewAuthService(users ports.UserRepository, tokens ports.TokenService, throttle ports.LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, log: log}
}

// Login verifies the credential pair and issues an auth token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthTokens, *domain.User, error) {
	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, email)
		if err != nil {
			// Throttle outage must not take down login.
			s.log.Warn().Err(err).Msg("login throttle unavailable")
		} else if !allowed {
			return nil, nil, domain.Unauthorized("password", "too many login attempts")
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil || user == nil || user.IsDisabled || !hash.Verify(password, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return nil, nil, domain.Unauthorized("password", loginFailedMessage)
	}

	tokens, err := s.tokens.IssueAuthTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}
	return tokens, user, nil
}

// Refresh rotates a refresh token: verify it against the persisted record,
// delete that record, then issue a brand-new access+refresh pair for the
// same subject. Any invalid, rotated or unknown token maps to BadRequest.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthTokens, error) {
	record, err := s.tokens.VerifyToken(ctx, refreshToken, domain.TokenRefresh)
	if err != nil {
		return nil, refreshInvalid()
	}

	user, err := s.users.FindByID(ctx, record.UserID)
	if err != nil || user == nil {
		return nil, refreshInvalid()
	}

	if _, err := s.tokens.RotateRefreshToken(ctx, record.ID); err != nil {
		// Lost the rotation race or the record is already gone.
		return nil, refreshInvalid()
	}

	return s.tokens.IssueAuthTokens(ctx, user.ID)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Fail(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}

func refreshInvalid() *domain.Error {
	return domain.BadRequest("refresh_token", "refresh_token is invalid")
}
