package models

import (
	"time"

	"gorm.io/gorm"
)

// Discount types shared by product discounts and coupons
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Product represents a catalog item
type Product struct {
	gorm.Model
	Title       string   `json:"title" gorm:"not null;index"`
	Description string   `json:"description"`
	Price       float64  `json:"price" gorm:"not null;check:price >= 0"`
	Category    string   `json:"category" gorm:"not null;index"`
	Tags        []string `json:"tags" gorm:"type:jsonb;serializer:json"`
	Images      []string `json:"images" gorm:"type:jsonb;serializer:json"`
	Stock       int      `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	IsActive    bool     `json:"is_active" gorm:"not null;index"`
	Discount    Discount `json:"discount" gorm:"embedded;embeddedPrefix:discount_"`
}

// Discount is an optional, optionally time-bounded price reduction.
// An empty Type means the product carries no discount.
type Discount struct {
	Type        string     `json:"type,omitempty"`
	Value       float64    `json:"value,omitempty"`
	MaxDiscount float64    `json:"max_discount,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
}

// ActiveAt reports whether the discount applies at the given instant
func (d Discount) ActiveAt(now time.Time) bool {
	if d.Type == "" || d.Value <= 0 {
		return false
	}
	if d.StartsAt != nil && now.Before(*d.StartsAt) {
		return false
	}
	if d.EndsAt != nil && now.After(*d.EndsAt) {
		return false
	}
	return true
}

// PrimaryImage returns the first image URL or an empty string
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
