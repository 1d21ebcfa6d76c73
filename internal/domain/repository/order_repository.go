package repository

import (
	"context"

	"blinkbuy/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when no order is stored under an id.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository stores placed orders.
type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
}
