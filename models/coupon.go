package models

import (
	"time"
)

type Coupon struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Code           string     `gorm:"uniqueIndex;not null" json:"code"`
	Description    string     `json:"description"`
	Type           string     `gorm:"not null" json:"type"` // "percentage" or "fixed"
	Value          float64    `gorm:"not null" json:"value"`
	MinOrderAmount float64    `json:"min_order_amount"`
	MaxDiscount    float64    `json:"max_discount"` // percentage coupons only, 0 = no cap
	UsageLimit     int        `json:"usage_limit"`  // 0 = unlimited
	UsedCount      int        `gorm:"not null;default:0" json:"used_count"`
	ExpiresAt      *time.Time `json:"expires_at"`
	IsActive       bool       `gorm:"not null" json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsExpired reports whether the coupon's expiry has passed at now
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// IsExhausted reports whether the usage limit has been reached
func (c *Coupon) IsExhausted() bool {
	return c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit
}
