package utils

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderLine is a requested product and quantity
type OrderLine struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// PlaceOrderInput carries everything needed to place an order
type PlaceOrderInput struct {
	UserID        uint
	Items         []OrderLine
	CouponCode    string
	PaymentMethod string
	Customer      models.CustomerSnapshot
	Notes         string
	Now           time.Time
}

// Quote is the priced result of a set of order lines
type Quote struct {
	Items    []models.OrderItem   `json:"items"`
	Subtotal float64              `json:"subtotal"`
	Discount float64              `json:"discount"`
	Total    float64              `json:"total"`
	Coupon   models.AppliedCoupon `json:"coupon"`
}

// MergeLines validates order lines and merges duplicates of the same product.
// The result is sorted by product id so row locks are always taken in the same order.
func MergeLines(lines []OrderLine) ([]OrderLine, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	quantities := make(map[uint]int, len(lines))
	for _, line := range lines {
		if line.ProductID == 0 {
			return nil, fmt.Errorf("%w: product id is required", ErrInvalidItem)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for product %d must be positive", ErrInvalidItem, line.ProductID)
		}
		quantities[line.ProductID] += line.Quantity
	}

	merged := make([]OrderLine, 0, len(quantities))
	for id, qty := range quantities {
		merged = append(merged, OrderLine{ProductID: id, Quantity: qty})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].ProductID < merged[j].ProductID })
	return merged, nil
}

// PriceLines turns merged lines into order items using the given products.
// Missing or inactive products and quantities above stock are rejected.
func PriceLines(lines []OrderLine, products map[uint]*models.Product, now time.Time) ([]models.OrderItem, float64, error) {
	items := make([]models.OrderItem, 0, len(lines))
	var subtotal float64

	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, 0, fmt.Errorf("%w: product %d not found", ErrInvalidItem, line.ProductID)
		}
		if !product.IsActive {
			return nil, 0, fmt.Errorf("%w: %s is not available", ErrInvalidItem, product.Title)
		}
		if line.Quantity > product.Stock {
			return nil, 0, fmt.Errorf("%w: only %d of %s left", ErrInsufficientStock, product.Stock, product.Title)
		}

		price := FinalPrice(product, now)
		lineTotal := RoundPrice(price * float64(line.Quantity))
		items = append(items, models.OrderItem{
			ProductID:     product.ID,
			Title:         product.Title,
			Image:         product.PrimaryImage(),
			OriginalPrice: product.Price,
			Price:         price,
			Quantity:      line.Quantity,
			LineTotal:     lineTotal,
		})
		subtotal += lineTotal
	}

	return items, RoundPrice(subtotal), nil
}

// OrderTotal returns subtotal minus discount, never below zero
func OrderTotal(subtotal, discount float64) float64 {
	total := RoundPrice(subtotal - discount)
	if total < 0 {
		return 0
	}
	return total
}

// QuoteOrder prices lines and an optional coupon without locking or writing anything
func QuoteOrder(ctx context.Context, db *gorm.DB, lines []OrderLine, couponCode string, now time.Time) (*Quote, error) {
	merged, err := MergeLines(lines)
	if err != nil {
		return nil, err
	}
	if now.IsZero() {
		now = time.Now()
	}

	db = db.WithContext(ctx)
	products, err := loadProducts(db, merged)
	if err != nil {
		return nil, err
	}
	items, subtotal, err := PriceLines(merged, products, now)
	if err != nil {
		return nil, err
	}

	quote := &Quote{Items: items, Subtotal: subtotal}
	if code := NormalizeCouponCode(couponCode); code != "" {
		coupon, err := findCoupon(db, code)
		if err != nil {
			return nil, err
		}
		discount, err := EvaluateCoupon(coupon, subtotal, now)
		if err != nil {
			return nil, err
		}
		quote.Discount = discount
		quote.Coupon = models.AppliedCoupon{Code: coupon.Code, Type: coupon.Type, Value: coupon.Value, Discount: discount}
	}
	quote.Total = OrderTotal(quote.Subtotal, quote.Discount)
	return quote, nil
}

// PlaceOrder validates, prices and persists an order in a single transaction.
// Stock, coupon usage, the order number and the cart all change together or not at all.
func PlaceOrder(ctx context.Context, db *gorm.DB, in PlaceOrderInput) (*models.Order, error) {
	merged, err := MergeLines(in.Items)
	if err != nil {
		return nil, err
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = models.PaymentMethodCOD
	}
	if !models.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, BadRequestError("Invalid payment method", nil)
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	threshold := config.Current().Tunables.LowStockThreshold

	var order *models.Order
	var lowStock []models.Product

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products, err := loadProducts(tx.Clauses(clause.Locking{Strength: "UPDATE"}), merged)
		if err != nil {
			return err
		}
		items, subtotal, err := PriceLines(merged, products, now)
		if err != nil {
			return err
		}

		var applied models.AppliedCoupon
		if code := NormalizeCouponCode(in.CouponCode); code != "" {
			coupon, err := findCoupon(tx.Clauses(clause.Locking{Strength: "UPDATE"}), code)
			if err != nil {
				return err
			}
			discount, err := EvaluateCoupon(coupon, subtotal, now)
			if err != nil {
				return err
			}
			res := tx.Model(&models.Coupon{}).
				Where("id = ? AND (usage_limit = 0 OR used_count < usage_limit)", coupon.ID).
				UpdateColumn("used_count", gorm.Expr("used_count + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrCouponUsageReached
			}
			applied = models.AppliedCoupon{Code: coupon.Code, Type: coupon.Type, Value: coupon.Value, Discount: discount}
		}

		for _, line := range merged {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", line.ProductID, line.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: product %d", ErrInsufficientStock, line.ProductID)
			}
			product := products[line.ProductID]
			if remaining := product.Stock - line.Quantity; remaining <= threshold {
				p := *product
				p.Stock = remaining
				lowStock = append(lowStock, p)
			}
		}

		number, err := NextSequence(tx, models.OrderNumberSequence)
		if err != nil {
			return err
		}

		order = &models.Order{
			OrderNumber:   number,
			UserID:        in.UserID,
			Subtotal:      subtotal,
			Discount:      applied.Discount,
			Total:         OrderTotal(subtotal, applied.Discount),
			Coupon:        applied,
			Status:        models.OrderStatusPending,
			PaymentMethod: in.PaymentMethod,
			PaymentStatus: models.PaymentStatusCompleted,
			Customer:      in.Customer,
			Notes:         in.Notes,
			Items:         items,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		ids := make([]uint, 0, len(merged))
		for _, line := range merged {
			ids = append(ids, line.ProductID)
		}
		return tx.Where("user_id = ? AND product_id IN ?", in.UserID, ids).Delete(&models.Cart{}).Error
	})
	if err != nil {
		return nil, ClassifyDBError(err)
	}

	afterOrderPlaced(ctx, order, lowStock)
	return order, nil
}

// NextSequence atomically increments and returns the named counter
func NextSequence(tx *gorm.DB, name string) (int64, error) {
	var seq int64
	err := tx.Raw(
		`INSERT INTO counters (name, seq) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		 RETURNING seq`, name,
	).Scan(&seq).Error
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s: %w", name, err)
	}
	return seq, nil
}

// afterOrderPlaced runs the post-commit side effects. Failures are only logged.
func afterOrderPlaced(ctx context.Context, order *models.Order, lowStock []models.Product) {
	LogInfo("Order %d placed by user %d: total %.2f", order.OrderNumber, order.UserID, order.Total)

	Notify(ctx, models.Notification{
		Type:        models.NotificationOrderPlaced,
		Title:       "New order",
		Message:     fmt.Sprintf("Order #%d placed by %s for %.2f", order.OrderNumber, order.Customer.Name, order.Total),
		OrderNumber: order.OrderNumber,
	})
	for _, p := range lowStock {
		Notify(ctx, models.Notification{
			Type:      models.NotificationLowStock,
			Title:     "Low stock",
			Message:   fmt.Sprintf("%s has %d left in stock", p.Title, p.Stock),
			ProductID: p.ID,
		})
	}

	if err := DefaultMailer().SendOrderConfirmation(order); err != nil {
		LogError("Failed to send confirmation for order %d to %s: %v", order.OrderNumber, order.Customer.Email, err)
	}
}

func loadProducts(db *gorm.DB, lines []OrderLine) (map[uint]*models.Product, error) {
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	var products []models.Product
	if err := db.Where("id IN ?", ids).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return byID, nil
}

func findCoupon(db *gorm.DB, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := db.Where("UPPER(code) = ?", code).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}
