package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

type stubAuthService struct {
	tokens *domain.AuthTokens
	user   *domain.User
	err    error

	lastEmail    string
	lastPassword string
	lastRefresh  string
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.AuthTokens, *domain.User, error) {
	s.lastEmail, s.lastPassword = email, password
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.tokens, s.user, nil
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthTokens, error) {
	s.lastRefresh = refreshToken
	if s.err != nil {
		return nil, s.err
	}
	return s.tokens, nil
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testTokens() *domain.AuthTokens {
	return &domain.AuthTokens{
		Access:  domain.TokenPair{Token: "acc.token", Expires: time.Now().Add(30 * time.Minute)},
		Refresh: domain.TokenPair{Token: "ref.token", Expires: time.Now().Add(720 * time.Hour)},
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	svc := &stubAuthService{
		tokens: testTokens(),
		user:   &domain.User{ID: "64a000000000000000000001", Email: "alice@example.com", Role: domain.RoleUser},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"Chang3Me!"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastEmail != "alice@example.com" || svc.lastPassword != "Chang3Me!" {
		t.Fatalf("service called with %q/%q", svc.lastEmail, svc.lastPassword)
	}

	var body struct {
		Tokens struct {
			Access  struct{ Token string }
			Refresh struct{ Token string }
		}
		User struct {
			ID    string `json:"id"`
			Email string
		}
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Tokens.Access.Token != "acc.token" || body.Tokens.Refresh.Token != "ref.token" {
		t.Fatalf("tokens = %+v", body.Tokens)
	}
	if body.User.Email != "alice@example.com" {
		t.Fatalf("user = %+v", body.User)
	}
}

func TestAuthHandlerLoginValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	for name, body := range map[string]string{
		"missing email":    `{"password":"secret123"}`,
		"malformed email":  `{"email":"not-an-email","password":"secret123"}`,
		"missing password": `{"email":"alice@example.com"}`,
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", body)
			err := h.Login(c)
			var derr *domain.Error
			if !errors.As(err, &derr) || derr.Status != http.StatusBadRequest {
				t.Fatalf("err = %v, want BadRequest domain error", err)
			}
		})
	}
}

func TestAuthHandlerLoginFailurePropagates(t *testing.T) {
	want := domain.Unauthorized("password", "email or password is not correct")
	h := NewAuthHandler(&stubAuthService{err: want})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong-pass"}`)
	err := h.Login(c)
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

func TestAuthHandlerRefreshTokens(t *testing.T) {
	svc := &stubAuthService{tokens: testTokens()}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/refresh-tokens",
		`{"refreshToken":"ref.token"}`)
	if err := h.RefreshTokens(c); err != nil {
		t.Fatalf("RefreshTokens() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastRefresh != "ref.token" {
		t.Fatalf("service called with %q", svc.lastRefresh)
	}
	var body struct {
		Tokens *domain.AuthTokens `json:"tokens"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Tokens == nil || body.Tokens.Access.Token != "acc.token" {
		t.Fatalf("tokens = %+v", body.Tokens)
	}
}

func TestAuthHandlerRefreshTokensInvalid(t *testing.T) {
	want := domain.BadRequest("refresh_token", "refresh_token is invalid")
	h := NewAuthHandler(&stubAuthService{err: want})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/refresh-tokens",
		`{"refreshToken":"rotated.token"}`)
	err := h.RefreshTokens(c)
	var derr *domain.Error
	if !errors.As(err, &derr) {
		t.Fatalf("err = %v, want domain error", err)
	}
	if derr.Status != http.StatusBadRequest || derr.Path != "refresh_token" {
		t.Fatalf("got %d %q, want 400 on refresh_token", derr.Status, derr.Path)
	}
}

func TestAuthHandlerRefreshTokensMissingField(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/refresh-tokens", `{}`)
	err := h.RefreshTokens(c)
	var derr *domain.Error
	if !errors.As(err, &derr) || derr.Status != http.StatusBadRequest {
		t.Fatalf("err = %v, want BadRequest domain error", err)
	}
}
