package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tenantive/accounts-api/internal/api/metrics"
	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
)

// UserHandler serves the /users routes.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=255"`
	Role       string `json:"role" validate:"omitempty,oneof=user admin superAdmin"`
	IsDisabled bool   `json:"isDisabled"`
}

type updateUserRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=255"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Role       *string `json:"role" validate:"omitempty,oneof=user admin superAdmin"`
	IsDisabled *bool   `json:"isDisabled"`
}

type createUserResponse struct {
	ID string `json:"id"`
}

type listUsersResponse struct {
	Users []domain.User `json:"users"`
}

// Create registers a new user. Role defaults to "user" when omitted.
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body createUserRequest true "user"
// @Success 201 {object} createUserResponse
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleUser
	}

	id, err := h.users.Create(c.Request().Context(), ports.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       role,
		IsDisabled: req.IsDisabled,
	})
	if err != nil {
		return err
	}
	metrics.UsersMutatedTotal.WithLabelValues("create").Inc()

	return c.JSON(http.StatusCreated, createUserResponse{ID: id})
}

// Fetch lists all users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} listUsersResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) Fetch(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listUsersResponse{Users: users})
}

// Me returns the authenticated user's own record.
// @Summary Get the current user
// @Tags users
// @Produce json
// @Success 200 {object} domain.User
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := identity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Show returns a single user by id.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "user id"
// @Success 200 {object} domain.User
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) Show(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update modifies a user. Role changes are gated on the actor's own rank.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "user id"
// @Param request body updateUserRequest true "fields to change"
// @Success 200 {object} domain.User
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := identity(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		IsDisabled: req.IsDisabled,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		in.Role = &role
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), actor, in)
	if err != nil {
		return err
	}
	metrics.UsersMutatedTotal.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, user)
}

// Remove deletes a user and records a final history snapshot.
// @Summary Delete a user
// @Tags users
// @Param id path string true "user id"
// @Success 204
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) Remove(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.UsersMutatedTotal.WithLabelValues("delete").Inc()

	return c.NoContent(http.StatusNoContent)
}
