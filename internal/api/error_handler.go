package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
// Unexpected errors outside development reduce to {message, status}.
type errorResponse struct {
	Message string `json:"message"`
	Name    string `json:"name,omitempty"`
	Path    string `json:"path,omitempty"`
	Type    string `json:"type,omitempty"`
	Status  int    `json:"status"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders domain errors as {message, name, path, type, status}.
//   - Maps echo's own errors (bind failures, router 404s) into the same envelope.
//   - Logs unexpected errors and, outside development, masks their message.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := resolveError(err, log, c, development)
		_ = c.JSON(resp.Status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, development bool) errorResponse {
	// Structured domain errors carry their own envelope fields.
	var derr *domain.Error
	if errors.As(err, &derr) {
		return errorResponse{
			Message: derr.Message,
			Name:    derr.Name,
			Path:    derr.Path,
			Type:    derr.Type,
			Status:  derr.Status,
		}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		name := http.StatusText(he.Code)
		return errorResponse{
			Message: fmt.Sprintf("%v", he.Message),
			Name:    name,
			Type:    name,
			Status:  he.Code,
		}
	}

	// Unexpected error: log the real cause; leak the message only in
	// development.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	if !development {
		return errorResponse{
			Message: "Internal Server Error",
			Status:  http.StatusInternalServerError,
		}
	}
	return errorResponse{
		Message: err.Error(),
		Name:    "InternalServerError",
		Type:    "InternalServerError",
		Status:  http.StatusInternalServerError,
	}
}
