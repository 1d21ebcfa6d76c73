package handler

import (
	"log/slog"
	"net/http"

	"blinkbuy/internal/delivery/http/response"
	"blinkbuy/internal/domain/entity"
	"blinkbuy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the read-only catalog
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProductsRequest filters the product listing; category wins over tab
type ListProductsRequest struct {
	Category string `query:"category"`
	Tab      string `query:"tab"`
}

// ListCategories returns every category or those of the tab query parameter
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	tab := c.QueryParam("tab")
	if tab == "" {
		tab = entity.AllTab
	}

	return response.Success(c, http.StatusOK, nonNil(h.catalogUC.CategoriesByTab(tab)), "Categories retrieved successfully")
}

// ListTabs returns the storefront tabs
func (h *CatalogHandler) ListTabs(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.Tabs(), "Tabs retrieved successfully")
}

// ListProducts returns the catalog, optionally filtered by category or tab
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var req ListProductsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product filter")
	}

	var products []entity.Product
	switch {
	case req.Category != "":
		products = h.catalogUC.ProductsByCategory(req.Category)
	case req.Tab != "":
		products = h.catalogUC.ProductsByTab(req.Tab)
	default:
		products = h.catalogUC.Products()
	}

	return response.Success(c, http.StatusOK, nonNil(products), "Products retrieved successfully")
}

// GetProduct returns one product by id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.ProductByID(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// nonNil renders empty results as [] instead of null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
