package utils

import (
	"strings"
	"time"

	"github.com/Govind-619/ShopSphere/models"
)

// NormalizeCouponCode trims and uppercases a coupon code
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// EvaluateCoupon returns the discount a coupon grants on subtotal at now.
// Checks run in a fixed order so the first failing rule is reported.
func EvaluateCoupon(coupon *models.Coupon, subtotal float64, now time.Time) (float64, error) {
	if coupon == nil {
		return 0, ErrCouponNotFound
	}
	if !coupon.IsActive {
		return 0, ErrCouponInactive
	}
	if coupon.IsExpired(now) {
		return 0, ErrCouponExpired
	}
	if coupon.IsExhausted() {
		return 0, ErrCouponUsageReached
	}
	if subtotal < coupon.MinOrderAmount {
		return 0, ErrCouponBelowMinimum
	}

	var discount float64
	switch coupon.Type {
	case models.DiscountPercentage:
		discount = subtotal * coupon.Value / 100
		if coupon.MaxDiscount > 0 && discount > coupon.MaxDiscount {
			discount = coupon.MaxDiscount
		}
	case models.DiscountFixed:
		discount = coupon.Value
	}

	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return RoundPrice(discount), nil
}
