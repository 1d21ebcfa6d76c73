package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is published once an order has been placed
type OrderPlacedEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	OrderID    string         `json:"order_id"`
	TotalItems int            `json:"total_items"`
	GrandTotal int64          `json:"grand_total"`
	Slot       string         `json:"slot"`
	Payment    string         `json:"payment_method"`
	Lines      []OrderLineRef `json:"lines"`
	PlacedAt   time.Time      `json:"placed_at"`
}

// OrderLineRef is a compact product reference inside an event
type OrderLineRef struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order event for downstream fulfilment
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
