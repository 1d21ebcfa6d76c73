package entity

import "time"

// DeliverySlot is the delivery window chosen at checkout.
type DeliverySlot string

const (
	DeliverySlot10Min     DeliverySlot = "10min"
	DeliverySlot30Min     DeliverySlot = "30min"
	DeliverySlotScheduled DeliverySlot = "scheduled"
)

// PaymentMethod is recorded on the order; payments are never processed.
type PaymentMethod string

const (
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCOD  PaymentMethod = "cod"
)

// Order is the immutable record of a checked-out cart.
type Order struct {
	ID            string        `json:"id"`
	Items         CartItems     `json:"items"`
	TotalItems    int           `json:"totalItems"`
	Subtotal      int64         `json:"subtotal"`
	DeliveryFee   int64         `json:"deliveryFee"`
	HandlingFee   int64         `json:"handlingFee"`
	GrandTotal    int64         `json:"grandTotal"`
	Slot          DeliverySlot  `json:"slot"`
	DeliveryLabel string        `json:"deliveryLabel"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PlacedAt      time.Time     `json:"placedAt"`
}
