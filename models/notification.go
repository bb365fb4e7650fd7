package models

import "time"

// Notification types
const (
	NotificationOrderPlaced = "order_placed"
	NotificationOrderStatus = "order_status"
	NotificationLowStock    = "low_stock"
)

// Notification is an informational record shown on the admin dashboard.
// It is persisted either in Postgres or in MongoDB, hence both tag sets.
type Notification struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	Type        string    `json:"type" gorm:"index" bson:"type"`
	Title       string    `json:"title" bson:"title"`
	Message     string    `json:"message" bson:"message"`
	OrderNumber int64     `json:"order_number,omitempty" bson:"order_number,omitempty"`
	ProductID   uint      `json:"product_id,omitempty" bson:"product_id,omitempty"`
	IsRead      bool      `json:"is_read" gorm:"index" bson:"is_read"`
	CreatedAt   time.Time `json:"created_at" gorm:"index" bson:"created_at"`
}
