package utils

import (
	"testing"
	"time"

	"github.com/Govind-619/ShopSphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCoupon(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		coupon   *models.Coupon
		subtotal float64
		discount float64
		err      error
	}{
		{
			name:     "percentage capped by max discount",
			coupon:   &models.Coupon{Type: models.DiscountPercentage, Value: 10, MaxDiscount: 15, IsActive: true},
			subtotal: 200,
			discount: 15,
		},
		{
			name:     "percentage without cap",
			coupon:   &models.Coupon{Type: models.DiscountPercentage, Value: 10, IsActive: true},
			subtotal: 200,
			discount: 20,
		},
		{
			name:     "fixed clamped to subtotal",
			coupon:   &models.Coupon{Type: models.DiscountFixed, Value: 50, IsActive: true},
			subtotal: 30,
			discount: 30,
		},
		{
			name:     "fixed",
			coupon:   &models.Coupon{Type: models.DiscountFixed, Value: 50, IsActive: true, ExpiresAt: &tomorrow},
			subtotal: 120,
			discount: 50,
		},
		{
			name:     "missing coupon",
			coupon:   nil,
			subtotal: 100,
			err:      ErrCouponNotFound,
		},
		{
			name:     "inactive",
			coupon:   &models.Coupon{Type: models.DiscountFixed, Value: 5},
			subtotal: 100,
			err:      ErrCouponInactive,
		},
		{
			name:     "expired",
			coupon:   &models.Coupon{Type: models.DiscountFixed, Value: 5, IsActive: true, ExpiresAt: &yesterday},
			subtotal: 100,
			err:      ErrCouponExpired,
		},
		{
			name:     "usage limit reached",
			coupon:   &models.Coupon{Type: models.DiscountFixed, Value: 5, IsActive: true, UsageLimit: 3, UsedCount: 3},
			subtotal: 100,
			err:      ErrCouponUsageReached,
		},
		{
			name:     "below minimum",
			coupon:   &models.Coupon{Type: models.DiscountFixed, Value: 5, IsActive: true, MinOrderAmount: 500},
			subtotal: 100,
			err:      ErrCouponBelowMinimum,
		},
		{
			name:     "inactive reported before expiry",
			coupon:   &models.Coupon{Type: models.DiscountFixed, Value: 5, ExpiresAt: &yesterday},
			subtotal: 100,
			err:      ErrCouponInactive,
		},
		{
			name:     "unlimited usage",
			coupon:   &models.Coupon{Type: models.DiscountFixed, Value: 5, IsActive: true, UsedCount: 1000},
			subtotal: 100,
			discount: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, err := EvaluateCoupon(tt.coupon, tt.subtotal, now)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Zero(t, discount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.discount, discount)
		})
	}
}

func TestEvaluateCouponNeverExceedsSubtotal(t *testing.T) {
	now := time.Now()
	coupon := &models.Coupon{Type: models.DiscountPercentage, Value: 100, IsActive: true}
	for _, subtotal := range []float64{0, 0.01, 9.99, 1000} {
		discount, err := EvaluateCoupon(coupon, subtotal, now)
		require.NoError(t, err)
		assert.LessOrEqual(t, discount, subtotal)
		assert.GreaterOrEqual(t, discount, 0.0)
	}
}

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "SAVE10", NormalizeCouponCode("  save10 "))
}
