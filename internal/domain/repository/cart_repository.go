package repository

import (
	"context"

	"blinkbuy/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for client-local persistence.
var (
	// ErrCorruptData is returned when a stored value cannot be decoded.
	ErrCorruptData = errors.New("stored data is corrupt")
)

// CartRepository persists the serialized cart under a single key.
type CartRepository interface {
	// Load returns the stored items, an empty list when nothing is stored,
	// or ErrCorruptData when the stored value is malformed.
	Load(ctx context.Context) (entity.CartItems, error)

	// Save replaces the stored items.
	Save(ctx context.Context, items entity.CartItems) error

	// Clear removes the stored value.
	Clear(ctx context.Context) error
}
