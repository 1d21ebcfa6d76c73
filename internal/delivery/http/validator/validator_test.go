package validator

import (
	"testing"

	domainerrors "blinkbuy/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1,lte=99"`
	Slot      string `json:"slot" validate:"omitempty,oneof=10min 30min scheduled"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{ProductID: "p1", Quantity: 2, Slot: "10min"}))

	err := v.Validate(&sampleRequest{Quantity: 0, Slot: "60min"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "productId is required")
	assert.Contains(t, appErr.Details(), "quantity must be at least 1")
	assert.Contains(t, appErr.Details(), "slot must be one of [10min 30min scheduled]")
}
