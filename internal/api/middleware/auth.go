package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tenantive/accounts-api/internal/api/metrics"
	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
	"github.com/tenantive/accounts-api/internal/core/rbac"
	"github.com/tenantive/accounts-api/internal/pkg/token"
)

// IdentityKey is the context key the guard stores the resolved user under.
const IdentityKey = "identity"

// Guard gates a route behind a bearer token and the given required rights.
// Per request: extract bearer header, verify via the token codec, load the
// identity from the credential store, then evaluate the RBAC policy against
// the route's required rights and the :id path parameter for the
// act-on-self override. The resolved user is stored in the echo context.
func Guard(codec *token.Codec, users ports.UserRepository, required ...rbac.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractBearer(c.Request().Header.Get("Authorization"))
			if raw == "" {
				metrics.AuthDenialsTotal.WithLabelValues("missing_token").Inc()
				return domain.Unauthorized("access_token", "access_token is required")
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				metrics.AuthDenialsTotal.WithLabelValues("invalid_token").Inc()
				return domain.Unauthorized("access_token", "access_token is invalid")
			}

			user, err := users.FindByID(c.Request().Context(), claims.SubjectID)
			if err != nil || user == nil || user.IsDisabled {
				metrics.AuthDenialsTotal.WithLabelValues("unknown_user").Inc()
				return domain.Unauthorized("access_token", "User not found")
			}

			if len(required) > 0 {
				granted := rbac.RightsFor(user.Role)
				targetID := c.Param("id")
				if !rbac.HasRequiredRights(required, granted) ||
					!rbac.CanActOnSelf(required, user.Role, user.ID, targetID) {
					metrics.AuthDenialsTotal.WithLabelValues("insufficient_rights").Inc()
					return domain.Forbidden("access_token", "Insufficient rights")
				}
			}

			c.Set(IdentityKey, user)
			return next(c)
		}
	}
}

// extractBearer returns the token part of an "Authorization: Bearer <t>"
// header, or "" when the header is absent or malformed.
func extractBearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
