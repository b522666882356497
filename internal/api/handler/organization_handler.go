package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
)

// OrganizationHandler serves the /organizations routes.
type OrganizationHandler struct {
	orgs ports.OrganizationService
}

func NewOrganizationHandler(orgs ports.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgs: orgs}
}

type createOrganizationRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type updateOrganizationRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=255"`
	IsDisabled *bool   `json:"isDisabled"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type listOrganizationsResponse struct {
	Organizations []domain.Organization `json:"organizations"`
}

// Create registers a new organization.
// @Summary Create an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body createOrganizationRequest true "organization"
// @Success 201 {object} createdResponse
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) Create(c echo.Context) error {
	var req createOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.orgs.Create(c.Request().Context(), ports.CreateOrganizationInput{
		Name: req.Name,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// Fetch lists all organizations.
// @Summary List organizations
// @Tags organizations
// @Produce json
// @Success 200 {object} listOrganizationsResponse
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) Fetch(c echo.Context) error {
	orgs, err := h.orgs.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOrganizationsResponse{Organizations: orgs})
}

// Show returns a single organization by id.
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param id path string true "organization id"
// @Success 200 {object} domain.Organization
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) Show(c echo.Context) error {
	org, err := h.orgs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, org)
}

// Update modifies an organization.
// @Summary Update an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "organization id"
// @Param request body updateOrganizationRequest true "fields to change"
// @Success 200 {object} domain.Organization
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) Update(c echo.Context) error {
	var req updateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	org, err := h.orgs.Update(c.Request().Context(), c.Param("id"), ports.UpdateOrganizationInput{
		Name:       req.Name,
		IsDisabled: req.IsDisabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, org)
}

// Remove deletes an organization.
// @Summary Delete an organization
// @Tags organizations
// @Param id path string true "organization id"
// @Success 204
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) Remove(c echo.Context) error {
	if err := h.orgs.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
