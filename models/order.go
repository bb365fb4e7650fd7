package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every status an admin may set
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Payment constants
const (
	PaymentMethodCOD    = "cod"
	PaymentMethodCard   = "card"
	PaymentMethodUPI    = "upi"
	PaymentMethodWallet = "wallet"

	PaymentStatusCompleted = "completed"
)

// PaymentMethods lists the accepted payment methods
var PaymentMethods = []string{PaymentMethodCOD, PaymentMethodCard, PaymentMethodUPI, PaymentMethodWallet}

// Order is an immutable purchase snapshot; only Status changes after creation
type Order struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	OrderNumber   int64            `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID        uint             `gorm:"index;not null" json:"user_id"`
	Subtotal      float64          `json:"subtotal"`
	Discount      float64          `json:"discount"`
	Total         float64          `json:"total"`
	Coupon        AppliedCoupon    `json:"coupon" gorm:"embedded;embeddedPrefix:coupon_"`
	Status        string           `gorm:"index;not null" json:"status"`
	PaymentMethod string           `json:"payment_method"`
	PaymentStatus string           `json:"payment_status"`
	Customer      CustomerSnapshot `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Items         []OrderItem      `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a line frozen at purchase time, decoupled from the live product
type OrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       uint    `gorm:"index;not null" json:"-"`
	ProductID     uint    `gorm:"index;not null" json:"product_id"`
	Title         string  `json:"title"`
	Image         string  `json:"image,omitempty"`
	OriginalPrice float64 `json:"original_price"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	LineTotal     float64 `json:"line_total"`
}

// AppliedCoupon captures the coupon terms used by an order
type AppliedCoupon struct {
	Code     string  `json:"code,omitempty"`
	Type     string  `json:"type,omitempty"`
	Value    float64 `json:"value,omitempty"`
	Discount float64 `json:"discount,omitempty"`
}

// CustomerSnapshot captures who the order ships to at purchase time
type CustomerSnapshot struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address" gorm:"embedded;embeddedPrefix:address_"`
}

// IsValidOrderStatus reports whether status is one of OrderStatuses
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidPaymentMethod reports whether method is accepted
func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
