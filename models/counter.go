package models

// Counter holds the last value issued for a named sequence
type Counter struct {
	Name string `gorm:"primaryKey"`
	Seq  int64  `gorm:"not null;default:0"`
}

// OrderNumberSequence names the counter that mints order numbers
const OrderNumberSequence = "order_number"
