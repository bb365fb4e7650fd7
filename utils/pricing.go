package utils

import (
	"math"
	"time"

	"github.com/Govind-619/ShopSphere/models"
)

// RoundPrice rounds an amount to two decimal places
func RoundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FinalPriceSQL computes FinalPrice over the products table.
// Both placeholders take the pricing instant.
const FinalPriceSQL = `ROUND((price::numeric - ROUND(LEAST(price, CASE
	WHEN discount_value <= 0
		OR (discount_starts_at IS NOT NULL AND discount_starts_at > ?)
		OR (discount_ends_at IS NOT NULL AND discount_ends_at < ?) THEN 0
	WHEN discount_type = 'percentage' AND discount_max_discount > 0 THEN LEAST(price * discount_value / 100, discount_max_discount)
	WHEN discount_type = 'percentage' THEN price * discount_value / 100
	WHEN discount_type = 'fixed' THEN discount_value
	ELSE 0 END)::numeric, 2)), 2)`

// PriceBreakdown describes a product's price at a given instant
type PriceBreakdown struct {
	OriginalPrice  float64 `json:"original_price"`
	FinalPrice     float64 `json:"final_price"`
	DiscountAmount float64 `json:"discount_amount"`
	DiscountType   string  `json:"discount_type,omitempty"`
}

// ProductDiscountAmount returns how much the product's own discount takes off
// its price at now. Inactive or out-of-window discounts yield 0.
func ProductDiscountAmount(product *models.Product, now time.Time) float64 {
	d := product.Discount
	if !d.ActiveAt(now) {
		return 0
	}

	var amount float64
	switch d.Type {
	case models.DiscountPercentage:
		amount = product.Price * d.Value / 100
		if d.MaxDiscount > 0 && amount > d.MaxDiscount {
			amount = d.MaxDiscount
		}
	case models.DiscountFixed:
		amount = d.Value
	default:
		return 0
	}

	if amount > product.Price {
		amount = product.Price
	}
	return RoundPrice(amount)
}

// FinalPrice returns the unit price a customer pays at now
func FinalPrice(product *models.Product, now time.Time) float64 {
	return RoundPrice(product.Price - ProductDiscountAmount(product, now))
}

// CalculatePrice returns the full price breakdown of a product at now
func CalculatePrice(product *models.Product, now time.Time) PriceBreakdown {
	discount := ProductDiscountAmount(product, now)
	breakdown := PriceBreakdown{
		OriginalPrice:  product.Price,
		FinalPrice:     RoundPrice(product.Price - discount),
		DiscountAmount: discount,
	}
	if discount > 0 {
		breakdown.DiscountType = product.Discount.Type
	}
	return breakdown
}
