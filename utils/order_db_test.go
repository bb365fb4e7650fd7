package utils

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB connects to TEST_DATABASE_DSN, migrates and empties every table
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	require.NoError(t, db.Exec(`TRUNCATE users, products, coupons, carts, wishlists, orders, order_items,
		counters, notifications, settings RESTART IDENTITY CASCADE`).Error)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, title string, price float64, stock int) models.Product {
	t.Helper()
	p := models.Product{Title: title, Price: price, Category: models.CategoryHome, Stock: stock, IsActive: true}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func stockOf(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var p models.Product
	require.NoError(t, db.First(&p, id).Error)
	return p.Stock
}

func orderInput(userID uint, coupon string, lines ...OrderLine) PlaceOrderInput {
	return PlaceOrderInput{
		UserID:        userID,
		Items:         lines,
		CouponCode:    coupon,
		PaymentMethod: models.PaymentMethodCOD,
		Customer:      models.CustomerSnapshot{Name: "Asha Rao", Phone: "9876543210"},
	}
}

func TestPlaceOrderConditionalDecrement(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	lamp := seedProduct(t, db, "Desk Lamp", 25, 5)

	order, err := PlaceOrder(ctx, db, orderInput(1, "", OrderLine{ProductID: lamp.ID, Quantity: 3}))
	require.NoError(t, err)
	assert.Equal(t, 75.0, order.Total)
	assert.Equal(t, 2, stockOf(t, db, lamp.ID))

	_, err = PlaceOrder(ctx, db, orderInput(2, "", OrderLine{ProductID: lamp.ID, Quantity: 3}))
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 2, stockOf(t, db, lamp.ID))

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.Equal(t, int64(1), orders)
}

func TestPlaceOrderConcurrentStock(t *testing.T) {
	db := testDB(t)
	lamp := seedProduct(t, db, "Desk Lamp", 25, 5)

	const buyers = 4
	var wg sync.WaitGroup
	var mu sync.Mutex
	placed := 0
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(user uint) {
			defer wg.Done()
			_, err := PlaceOrder(context.Background(), db, orderInput(user, "", OrderLine{ProductID: lamp.ID, Quantity: 3}))
			if err == nil {
				mu.Lock()
				placed++
				mu.Unlock()
				return
			}
			assert.True(t, errors.Is(err, ErrInsufficientStock) || errors.Is(err, ErrConflict), "unexpected error: %v", err)
		}(uint(i + 1))
	}
	wg.Wait()

	assert.Equal(t, 1, placed)
	assert.Equal(t, 2, stockOf(t, db, lamp.ID))
}

func TestPlaceOrderNumbersIncrease(t *testing.T) {
	db := testDB(t)
	lamp := seedProduct(t, db, "Desk Lamp", 25, 10)

	var last int64
	for i := 0; i < 3; i++ {
		order, err := PlaceOrder(context.Background(), db, orderInput(1, "", OrderLine{ProductID: lamp.ID, Quantity: 1}))
		require.NoError(t, err)
		assert.Greater(t, order.OrderNumber, last)
		last = order.OrderNumber
	}
	assert.Equal(t, int64(3), last)
}

func TestPlaceOrderCouponUsageLimit(t *testing.T) {
	db := testDB(t)
	lamp := seedProduct(t, db, "Desk Lamp", 100, 20)
	coupon := models.Coupon{Code: "SAVE10", Type: models.DiscountPercentage, Value: 10, UsageLimit: 2, IsActive: true}
	require.NoError(t, db.Create(&coupon).Error)

	const buyers = 5
	var wg sync.WaitGroup
	var mu sync.Mutex
	placed := 0
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(user uint) {
			defer wg.Done()
			order, err := PlaceOrder(context.Background(), db, orderInput(user, "save10", OrderLine{ProductID: lamp.ID, Quantity: 1}))
			if err == nil {
				assert.Equal(t, 10.0, order.Discount)
				assert.Equal(t, "SAVE10", order.Coupon.Code)
				mu.Lock()
				placed++
				mu.Unlock()
				return
			}
			assert.True(t, errors.Is(err, ErrCouponUsageReached) || errors.Is(err, ErrConflict), "unexpected error: %v", err)
		}(uint(i + 1))
	}
	wg.Wait()

	require.NoError(t, db.First(&coupon, coupon.ID).Error)
	assert.Equal(t, 2, placed)
	assert.Equal(t, 2, coupon.UsedCount)
	assert.Equal(t, 20-placed, stockOf(t, db, lamp.ID))
}

func TestPlaceOrderRollsBackOnFailure(t *testing.T) {
	db := testDB(t)
	lamp := seedProduct(t, db, "Desk Lamp", 50, 5)
	coupon := models.Coupon{Code: "FLAT5", Type: models.DiscountFixed, Value: 5, UsageLimit: 10, IsActive: true}
	require.NoError(t, db.Create(&coupon).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: 1, ProductID: lamp.ID, Quantity: 2}).Error)

	// The counter is empty, so the next order number collides with this row
	// after stock and coupon usage have already been written.
	require.NoError(t, db.Create(&models.Order{OrderNumber: 1, UserID: 9, Status: models.OrderStatusPending}).Error)

	_, err := PlaceOrder(context.Background(), db, orderInput(1, "FLAT5", OrderLine{ProductID: lamp.ID, Quantity: 2}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicate)

	assert.Equal(t, 5, stockOf(t, db, lamp.ID))
	require.NoError(t, db.First(&coupon, coupon.ID).Error)
	assert.Equal(t, 0, coupon.UsedCount)

	var counters, carts, orders int64
	db.Model(&models.Counter{}).Count(&counters)
	db.Model(&models.Cart{}).Where("user_id = ?", 1).Count(&carts)
	db.Model(&models.Order{}).Count(&orders)
	assert.Zero(t, counters)
	assert.Equal(t, int64(1), carts)
	assert.Equal(t, int64(1), orders)
}

func TestPlaceOrderClearsPurchasedCartLines(t *testing.T) {
	db := testDB(t)
	lamp := seedProduct(t, db, "Desk Lamp", 25, 5)
	fan := seedProduct(t, db, "Desk Fan", 40, 5)
	require.NoError(t, db.Create(&models.Cart{UserID: 1, ProductID: lamp.ID, Quantity: 1}).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: 1, ProductID: fan.ID, Quantity: 1}).Error)

	order, err := PlaceOrder(context.Background(), db, PlaceOrderInput{
		UserID:   1,
		Items:    []OrderLine{{ProductID: lamp.ID, Quantity: 1}},
		Customer: models.CustomerSnapshot{Name: "Asha Rao"},
		Now:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, models.PaymentStatusCompleted, order.PaymentStatus)

	var remaining []models.Cart
	require.NoError(t, db.Where("user_id = ?", 1).Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, fan.ID, remaining[0].ProductID)
}

func TestSoftDeletedUserReleasesEmail(t *testing.T) {
	db := testDB(t)

	first := models.User{Name: "Asha Rao", Email: "asha@example.com", Password: "x", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&first).Error)

	dup := models.User{Name: "Asha R", Email: "ASHA@example.com", Password: "x", Role: models.RoleCustomer}
	err := db.Create(&dup).Error
	require.Error(t, err)
	assert.ErrorIs(t, ClassifyDBError(err), ErrDuplicate)

	require.NoError(t, db.Delete(&first).Error)
	again := models.User{Name: "Asha Rao", Email: "asha@example.com", Password: "y", Role: models.RoleCustomer}
	assert.NoError(t, db.Create(&again).Error)
}

func TestFinalPriceSQLMatchesFinalPrice(t *testing.T) {
	db := testDB(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	past, future := now.Add(-48*time.Hour), now.Add(48*time.Hour)

	products := []models.Product{
		{Title: "Plain", Price: 99.99},
		{Title: "Percent", Price: 80, Discount: models.Discount{Type: models.DiscountPercentage, Value: 12.5}},
		{Title: "Capped", Price: 500, Discount: models.Discount{Type: models.DiscountPercentage, Value: 50, MaxDiscount: 40}},
		{Title: "Fixed over price", Price: 30, Discount: models.Discount{Type: models.DiscountFixed, Value: 45}},
		{Title: "Not started", Price: 60, Discount: models.Discount{Type: models.DiscountFixed, Value: 10, StartsAt: &future}},
		{Title: "Ended", Price: 60, Discount: models.Discount{Type: models.DiscountFixed, Value: 10, EndsAt: &past}},
		{Title: "In window", Price: 60, Discount: models.Discount{Type: models.DiscountFixed, Value: 10, StartsAt: &past, EndsAt: &future}},
	}
	for i := range products {
		products[i].Category = models.CategoryHome
		products[i].Stock = 1
		products[i].IsActive = true
		require.NoError(t, db.Create(&products[i]).Error)
	}

	for _, p := range products {
		var got float64
		require.NoError(t, db.Model(&models.Product{}).Select(FinalPriceSQL, now, now).Where("id = ?", p.ID).Scan(&got).Error)
		assert.InDelta(t, FinalPrice(&p, now), got, 0.001, p.Title)
	}
}
