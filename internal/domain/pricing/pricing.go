// Package pricing derives delivery and handling charges from a cart subtotal.
package pricing

const (
	// FreeDeliveryThreshold is the subtotal from which delivery is free.
	FreeDeliveryThreshold int64 = 499
	// DeliveryFee applies to non-empty carts below FreeDeliveryThreshold.
	DeliveryFee int64 = 25
	// HandlingFee applies to every order.
	HandlingFee int64 = 4
)

// Breakdown is derived from the subtotal alone and never stored.
type Breakdown struct {
	Subtotal              int64 `json:"subtotal"`
	DeliveryFee           int64 `json:"deliveryFee"`
	HandlingFee           int64 `json:"handlingFee"`
	GrandTotal            int64 `json:"grandTotal"`
	AmountForFreeDelivery int64 `json:"amountForFreeDelivery"`
}

// Compute returns the pricing breakdown for a non-negative subtotal.
func Compute(subtotal int64) Breakdown {
	var deliveryFee int64
	if subtotal > 0 && subtotal < FreeDeliveryThreshold {
		deliveryFee = DeliveryFee
	}

	return Breakdown{
		Subtotal:              subtotal,
		DeliveryFee:           deliveryFee,
		HandlingFee:           HandlingFee,
		GrandTotal:            subtotal + deliveryFee + HandlingFee,
		AmountForFreeDelivery: max(0, FreeDeliveryThreshold-subtotal),
	}
}

// FreeDelivery reports whether the breakdown carries no delivery fee.
func (b Breakdown) FreeDelivery() bool {
	return b.DeliveryFee == 0
}
