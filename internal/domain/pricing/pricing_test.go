package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		want     Breakdown
	}{
		{
			name:     "empty cart",
			subtotal: 0,
			want:     Breakdown{Subtotal: 0, DeliveryFee: 0, HandlingFee: 4, GrandTotal: 4, AmountForFreeDelivery: 499},
		},
		{
			name:     "small order pays delivery",
			subtotal: 100,
			want:     Breakdown{Subtotal: 100, DeliveryFee: 25, HandlingFee: 4, GrandTotal: 129, AmountForFreeDelivery: 399},
		},
		{
			name:     "one below threshold",
			subtotal: 498,
			want:     Breakdown{Subtotal: 498, DeliveryFee: 25, HandlingFee: 4, GrandTotal: 527, AmountForFreeDelivery: 1},
		},
		{
			name:     "exactly at threshold",
			subtotal: 499,
			want:     Breakdown{Subtotal: 499, DeliveryFee: 0, HandlingFee: 4, GrandTotal: 503, AmountForFreeDelivery: 0},
		},
		{
			name:     "above threshold",
			subtotal: 1200,
			want:     Breakdown{Subtotal: 1200, DeliveryFee: 0, HandlingFee: 4, GrandTotal: 1204, AmountForFreeDelivery: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.subtotal))
		})
	}
}

func TestCompute_Properties(t *testing.T) {
	for subtotal := int64(0); subtotal <= 2000; subtotal++ {
		b := Compute(subtotal)

		assert.Equal(t, subtotal == 0 || subtotal >= FreeDeliveryThreshold, b.DeliveryFee == 0, "subtotal %d", subtotal)
		assert.Equal(t, HandlingFee, b.HandlingFee)
		assert.Equal(t, subtotal+b.DeliveryFee+HandlingFee, b.GrandTotal)
		assert.GreaterOrEqual(t, b.AmountForFreeDelivery, int64(0))
	}
}
