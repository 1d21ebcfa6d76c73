package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"blinkbuy/internal/delivery/http/response"
	"blinkbuy/internal/domain/entity"
	"blinkbuy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves checkout and order tracking
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// PlaceOrderRequest represents the checkout form
type PlaceOrderRequest struct {
	Slot          string `json:"slot" validate:"required,oneof=10min 30min scheduled"`
	ScheduledDate string `json:"scheduledDate" validate:"required_if=Slot scheduled"`
	ScheduledTime string `json:"scheduledTime" validate:"required_if=Slot scheduled"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=upi card cod"`
}

// PlacedOrder is the checkout response; the QR code is a base64 PNG
type PlacedOrder struct {
	Order      *entity.Order `json:"order"`
	TrackingQR string        `json:"trackingQr,omitempty"`
}

// LookupOrderRequest carries a scanned tracking QR payload
type LookupOrderRequest struct {
	Code string `query:"code" validate:"required"`
}

// Quote returns the cart, pricing and delivery slots for the checkout page
func (h *CheckoutHandler) Quote(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.checkoutUC.Quote(), "Checkout quote retrieved successfully")
}

// PlaceOrder turns the cart into an order
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	order, err := h.checkoutUC.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Slot:          entity.DeliverySlot(req.Slot),
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	placed := PlacedOrder{Order: order}
	png, err := h.checkoutUC.TrackingQR(ctx, order.ID)
	if err != nil {
		// The order exists either way, the QR stays reachable through its own endpoint
		h.logger.Warn("Failed to render tracking QR", slog.String("order_id", order.ID), slog.Any("error", err))
	} else {
		placed.TrackingQR = base64.StdEncoding.EncodeToString(png)
	}

	return response.Success(c, http.StatusCreated, placed, "Order placed successfully")
}

// GetOrder returns a placed order
func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	order, err := h.checkoutUC.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// TrackingQR streams the order's tracking QR code as PNG
func (h *CheckoutHandler) TrackingQR(c echo.Context) error {
	png, err := h.checkoutUC.TrackingQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// LookupOrder finds the order behind a scanned tracking QR code
func (h *CheckoutHandler) LookupOrder(c echo.Context) error {
	var req LookupOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lookup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.checkoutUC.LookupByQR(c.Request().Context(), req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}
