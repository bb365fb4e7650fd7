package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/Govind-619/ShopSphere/models"
	"gorm.io/gorm"
)

// CartLine is a cart entry priced at the current moment
type CartLine struct {
	ID            uint    `json:"id"`
	ProductID     uint    `json:"product_id"`
	Title         string  `json:"title"`
	Image         string  `json:"image,omitempty"`
	OriginalPrice float64 `json:"original_price"`
	FinalPrice    float64 `json:"final_price"`
	Quantity      int     `json:"quantity"`
	LineTotal     float64 `json:"line_total"`
	Stock         int     `json:"stock"`
	Available     bool    `json:"available"`
}

// CartDetails is the priced content of a customer's cart
type CartDetails struct {
	Items       []CartLine `json:"items"`
	ItemCount   int        `json:"item_count"`
	Subtotal    float64    `json:"subtotal"`
	CanCheckout bool       `json:"can_checkout"`
}

// BuildCartDetails prices cart entries at now. Lines whose product is inactive
// or short on stock are marked unavailable and excluded from the subtotal.
func BuildCartDetails(entries []models.Cart, now time.Time) *CartDetails {
	details := &CartDetails{Items: make([]CartLine, 0, len(entries)), CanCheckout: len(entries) > 0}
	for _, entry := range entries {
		p := entry.Product
		price := FinalPrice(&p, now)
		line := CartLine{
			ID:            entry.ID,
			ProductID:     entry.ProductID,
			Title:         p.Title,
			Image:         p.PrimaryImage(),
			OriginalPrice: p.Price,
			FinalPrice:    price,
			Quantity:      entry.Quantity,
			LineTotal:     RoundPrice(price * float64(entry.Quantity)),
			Stock:         p.Stock,
			Available:     p.ID != 0 && p.IsActive && entry.Quantity <= p.Stock,
		}
		if line.Available {
			details.Subtotal += line.LineTotal
			details.ItemCount += line.Quantity
		} else {
			details.CanCheckout = false
		}
		details.Items = append(details.Items, line)
	}
	details.Subtotal = RoundPrice(details.Subtotal)
	return details
}

// GetCartDetails loads and prices a customer's cart
func GetCartDetails(ctx context.Context, db *gorm.DB, userID uint) (*CartDetails, error) {
	var entries []models.Cart
	err := db.WithContext(ctx).Preload("Product").Where("user_id = ?", userID).Order("created_at").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %v", err)
	}
	return BuildCartDetails(entries, time.Now()), nil
}

// CartOrderLines converts cart entries into order lines
func CartOrderLines(entries []models.Cart) []OrderLine {
	lines := make([]OrderLine, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, OrderLine{ProductID: entry.ProductID, Quantity: entry.Quantity})
	}
	return lines
}
