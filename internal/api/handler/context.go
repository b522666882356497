package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tenantive/accounts-api/internal/api/middleware"
	"github.com/tenantive/accounts-api/internal/core/domain"
)

// identity extracts the user resolved by the auth guard. Its presence
// proves the guard ran; a handler reached without it is a wiring bug and
// the request is rejected rather than served anonymously.
func identity(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.IdentityKey).(*domain.User)
	if user == nil {
		return nil, domain.Unauthorized("access_token", "missing authentication state")
	}
	return user, nil
}
