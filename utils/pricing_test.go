package utils

import (
	"testing"
	"time"

	"github.com/Govind-619/ShopSphere/models"
	"github.com/stretchr/testify/assert"
)

func TestFinalPrice(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		product  models.Product
		expected float64
	}{
		{
			name:     "no discount",
			product:  models.Product{Price: 100},
			expected: 100,
		},
		{
			name:     "percentage",
			product:  models.Product{Price: 200, Discount: models.Discount{Type: models.DiscountPercentage, Value: 10}},
			expected: 180,
		},
		{
			name:     "percentage capped",
			product:  models.Product{Price: 200, Discount: models.Discount{Type: models.DiscountPercentage, Value: 50, MaxDiscount: 30}},
			expected: 170,
		},
		{
			name:     "fixed",
			product:  models.Product{Price: 99.99, Discount: models.Discount{Type: models.DiscountFixed, Value: 10}},
			expected: 89.99,
		},
		{
			name:     "fixed larger than price",
			product:  models.Product{Price: 30, Discount: models.Discount{Type: models.DiscountFixed, Value: 50}},
			expected: 0,
		},
		{
			name:     "not started",
			product:  models.Product{Price: 100, Discount: models.Discount{Type: models.DiscountFixed, Value: 10, StartsAt: &future}},
			expected: 100,
		},
		{
			name:     "ended",
			product:  models.Product{Price: 100, Discount: models.Discount{Type: models.DiscountFixed, Value: 10, EndsAt: &past}},
			expected: 100,
		},
		{
			name:     "inside window",
			product:  models.Product{Price: 100, Discount: models.Discount{Type: models.DiscountPercentage, Value: 25, StartsAt: &past, EndsAt: &future}},
			expected: 75,
		},
		{
			name:     "unknown type ignored",
			product:  models.Product{Price: 100, Discount: models.Discount{Type: "bogo", Value: 10}},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FinalPrice(&tt.product, now))
		})
	}
}

func TestCalculatePrice(t *testing.T) {
	now := time.Now()
	p := models.Product{Price: 50, Discount: models.Discount{Type: models.DiscountPercentage, Value: 20}}

	b := CalculatePrice(&p, now)
	assert.Equal(t, 50.0, b.OriginalPrice)
	assert.Equal(t, 40.0, b.FinalPrice)
	assert.Equal(t, 10.0, b.DiscountAmount)
	assert.Equal(t, models.DiscountPercentage, b.DiscountType)

	plain := CalculatePrice(&models.Product{Price: 50}, now)
	assert.Empty(t, plain.DiscountType)
	assert.Equal(t, 50.0, plain.FinalPrice)
}

func TestRoundPrice(t *testing.T) {
	assert.Equal(t, 10.13, RoundPrice(10.125000001))
	assert.Equal(t, 0.3, RoundPrice(0.1+0.2))
}
