package utils

import (
	"testing"
	"time"

	"github.com/Govind-619/ShopSphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCartDetails(t *testing.T) {
	now := time.Now()
	discounted := *testProduct(2, 20, 10)
	discounted.Discount = models.Discount{Type: models.DiscountPercentage, Value: 50}
	inactive := *testProduct(3, 99, 10)
	inactive.IsActive = false

	entries := []models.Cart{
		{ID: 1, ProductID: 1, Product: *testProduct(1, 10, 10), Quantity: 3},
		{ID: 2, ProductID: 2, Product: discounted, Quantity: 2},
		{ID: 3, ProductID: 3, Product: inactive, Quantity: 1},
	}

	details := BuildCartDetails(entries, now)
	require.Len(t, details.Items, 3)
	assert.Equal(t, 30.0, details.Items[0].LineTotal)
	assert.Equal(t, 10.0, details.Items[1].FinalPrice)
	assert.False(t, details.Items[2].Available)
	assert.Equal(t, 50.0, details.Subtotal)
	assert.Equal(t, 5, details.ItemCount)
	assert.False(t, details.CanCheckout)
}

func TestBuildCartDetailsEmpty(t *testing.T) {
	details := BuildCartDetails(nil, time.Now())
	assert.Empty(t, details.Items)
	assert.False(t, details.CanCheckout)
	assert.Zero(t, details.Subtotal)
}

func TestCartOrderLines(t *testing.T) {
	lines := CartOrderLines([]models.Cart{{ProductID: 4, Quantity: 2}})
	assert.Equal(t, []OrderLine{{ProductID: 4, Quantity: 2}}, lines)
}
