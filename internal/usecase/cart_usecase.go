// Package usecase defines the application operations exposed to delivery layers.
package usecase

import (
	"context"

	"blinkbuy/internal/domain/entity"
	"blinkbuy/internal/domain/pricing"
)

// CartSnapshot is a consistent view of the cart taken under one lock
type CartSnapshot struct {
	Items      entity.CartItems  `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice int64             `json:"totalPrice"`
	Pricing    pricing.Breakdown `json:"pricing"`
}

// CartUsecase is the single write path to the shopper's cart, shared by the
// direct-manipulation API and the assistant
type CartUsecase interface {
	// AddToCart adds quantity to an existing entry or inserts a new one
	AddToCart(ctx context.Context, product entity.Product, quantity int) error

	// AddProducts adds each product with quantity 1
	AddProducts(ctx context.Context, products []entity.Product) error

	// RemoveFromCart deletes the entry if present
	RemoveFromCart(ctx context.Context, productID string)

	// UpdateQuantity sets an existing entry's quantity, removing it when quantity <= 0
	UpdateQuantity(ctx context.Context, productID string, quantity int)

	// ClearCart empties the cart and returns how many entries it held
	ClearCart(ctx context.Context) int

	// Deduct subtracts the given quantities in one step, dropping entries that
	// reach zero. Quantities added after items were read are kept.
	Deduct(ctx context.Context, items entity.CartItems)

	// GetItemQuantity returns the quantity of productID or 0
	GetItemQuantity(productID string) int

	// Items returns a copy of the entries in insertion order
	Items() entity.CartItems

	// TotalItems sums quantities
	TotalItems() int

	// TotalPrice sums price × quantity
	TotalPrice() int64

	// Snapshot returns items, totals and pricing
	Snapshot() CartSnapshot
}
