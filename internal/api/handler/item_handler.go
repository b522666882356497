package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
)

// ItemHandler serves the /items routes.
type ItemHandler struct {
	items ports.ItemService
}

func NewItemHandler(items ports.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

type createItemRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Code string `json:"code" validate:"required,max=64"`
}

type updateItemRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=255"`
	Code       *string `json:"code" validate:"omitempty,max=64"`
	IsDisabled *bool   `json:"isDisabled"`
}

type listItemsResponse struct {
	Items []domain.Item `json:"items"`
}

// Create registers a new item.
// @Summary Create an item
// @Tags items
// @Accept json
// @Produce json
// @Param request body createItemRequest true "item"
// @Success 201 {object} createdResponse
// @Security BearerAuth
// @Router /items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.items.Create(c.Request().Context(), ports.CreateItemInput{
		Name: req.Name,
		Code: req.Code,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// Fetch lists all items.
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {object} listItemsResponse
// @Security BearerAuth
// @Router /items [get]
func (h *ItemHandler) Fetch(c echo.Context) error {
	items, err := h.items.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listItemsResponse{Items: items})
}

// Show returns a single item by id.
// @Summary Get an item
// @Tags items
// @Produce json
// @Param id path string true "item id"
// @Success 200 {object} domain.Item
// @Security BearerAuth
// @Router /items/{id} [get]
func (h *ItemHandler) Show(c echo.Context) error {
	item, err := h.items.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Update modifies an item.
// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "item id"
// @Param request body updateItemRequest true "fields to change"
// @Success 200 {object} domain.Item
// @Security BearerAuth
// @Router /items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.items.Update(c.Request().Context(), c.Param("id"), ports.UpdateItemInput{
		Name:       req.Name,
		Code:       req.Code,
		IsDisabled: req.IsDisabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Remove deletes an item.
// @Summary Delete an item
// @Tags items
// @Param id path string true "item id"
// @Success 204
// @Security BearerAuth
// @Router /items/{id} [delete]
func (h *ItemHandler) Remove(c echo.Context) error {
	if err := h.items.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
