package handler

import (
	"log/slog"
	"net/http"

	"blinkbuy/internal/delivery/http/response"
	"blinkbuy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC    usecase.CartUsecase
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CartHandler exposes direct cart manipulation
type CartHandler struct {
	cartUC    usecase.CartUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:    params.CartUC,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0,lte=99"`
}

// UpdateItemRequest represents the request body for setting a quantity; zero removes the item
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0,lte=99"`
}

// GetCart returns the cart with totals and pricing
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartUC.Snapshot(), "Cart retrieved successfully")
}

// AddItem adds a catalog product; a missing quantity means one
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.ProductByID(req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if err := h.cartUC.AddToCart(c.Request().Context(), product, quantity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.Snapshot(), "Added to cart")
}

// UpdateItem sets the quantity of a cart entry
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	h.cartUC.UpdateQuantity(c.Request().Context(), c.Param("id"), *req.Quantity)

	return response.Success(c, http.StatusOK, h.cartUC.Snapshot(), "Cart updated")
}

// RemoveItem deletes a cart entry
func (h *CartHandler) RemoveItem(c echo.Context) error {
	h.cartUC.RemoveFromCart(c.Request().Context(), c.Param("id"))

	return response.Success(c, http.StatusOK, h.cartUC.Snapshot(), "Removed from cart")
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	h.cartUC.ClearCart(c.Request().Context())

	return response.Success(c, http.StatusOK, h.cartUC.Snapshot(), "Cart cleared")
}
