package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tenantive/accounts-api/internal/api/metrics"
	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
)

// AuthHandler serves the /auth routes.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=255"`
}

type loginResponse struct {
	Tokens *domain.AuthTokens `json:"tokens"`
	User   *domain.User       `json:"user"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type refreshResponse struct {
	Tokens *domain.AuthTokens `json:"tokens"`
}

// Login authenticates a user with email and password.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "credentials"
// @Success 200 {object} loginResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tokens, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Tokens: tokens,
		User:   user,
	})
}

// RefreshTokens exchanges a valid refresh token for a fresh token pair.
// @Summary Refresh the token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body refreshRequest true "refresh token"
// @Success 200 {object} refreshResponse
// @Router /auth/refresh-tokens [post]
func (h *AuthHandler) RefreshTokens(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tokens, err := h.auth.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		metrics.TokenRotationsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.TokenRotationsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, refreshResponse{Tokens: tokens})
}
