package usecase

import (
	"context"

	"blinkbuy/internal/domain/entity"
)

// DeliverySlotOption is a selectable delivery window
type DeliverySlotOption struct {
	ID    entity.DeliverySlot `json:"id"`
	Label string              `json:"label"`
}

// CheckoutQuote summarizes the cart for the checkout page
type CheckoutQuote struct {
	CartSnapshot
	Slots []DeliverySlotOption `json:"slots"`
}

// PlaceOrderInput carries the checkout form
type PlaceOrderInput struct {
	Slot          entity.DeliverySlot  `json:"slot"`
	ScheduledDate string               `json:"scheduledDate,omitempty"`
	ScheduledTime string               `json:"scheduledTime,omitempty"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
}

// CheckoutUsecase turns the cart into an order
type CheckoutUsecase interface {
	Quote() *CheckoutQuote
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)
	TrackingQR(ctx context.Context, orderID string) ([]byte, error)
	LookupByQR(ctx context.Context, qrData string) (*entity.Order, error)
}
