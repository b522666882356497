package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
)

// ProductHandler serves the /products routes.
type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductRequest struct {
	Name           string  `json:"name" validate:"required,max=255"`
	Code           string  `json:"code" validate:"required,max=64"`
	OrganizationID string  `json:"organizationId" validate:"required"`
	Cost           float64 `json:"cost" validate:"gte=0"`
	Price          float64 `json:"price" validate:"gte=0"`
}

type updateProductRequest struct {
	Name       *string  `json:"name" validate:"omitempty,max=255"`
	Code       *string  `json:"code" validate:"omitempty,max=64"`
	Cost       *float64 `json:"cost" validate:"omitempty,gte=0"`
	Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	IsDisabled *bool    `json:"isDisabled"`
}

type listProductsResponse struct {
	Products []domain.Product `json:"products"`
}

// Create registers a new product under an existing organization.
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param request body createProductRequest true "product"
// @Success 201 {object} createdResponse
// @Security BearerAuth
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.products.Create(c.Request().Context(), ports.CreateProductInput{
		Name:           req.Name,
		Code:           req.Code,
		OrganizationID: req.OrganizationID,
		Cost:           req.Cost,
		Price:          req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// Fetch lists all products.
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {object} listProductsResponse
// @Security BearerAuth
// @Router /products [get]
func (h *ProductHandler) Fetch(c echo.Context) error {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProductsResponse{Products: products})
}

// Show returns a single product by id.
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} domain.Product
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *ProductHandler) Show(c echo.Context) error {
	product, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update modifies a product.
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param request body updateProductRequest true "fields to change"
// @Success 200 {object} domain.Product
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.products.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:       req.Name,
		Code:       req.Code,
		Cost:       req.Cost,
		Price:      req.Price,
		IsDisabled: req.IsDisabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Remove deletes a product.
// @Summary Delete a product
// @Tags products
// @Param id path string true "product id"
// @Success 204
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) Remove(c echo.Context) error {
	if err := h.products.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
