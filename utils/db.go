package utils

import (
	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
)

// GetUserByID retrieves a user by ID
func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := config.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email, ignoring case
func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("LOWER(email) = ?", models.NormalizeEmail(email)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProductByID retrieves a product by ID
func GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	err := config.DB.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetAvailableProduct retrieves an active product, or ErrInvalidItem
func GetAvailableProduct(id uint) (*models.Product, error) {
	product, err := GetProductByID(id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrInvalidItem
	}
	return product, nil
}

// GetOrderByNumber loads an order with its items. A non-zero userID restricts
// the lookup to that customer's orders.
func GetOrderByNumber(number int64, userID uint) (*models.Order, error) {
	query := config.DB.Preload("Items").Where("order_number = ?", number)
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	var order models.Order
	if err := query.First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// BlockUser blocks a user
func BlockUser(userID uint) error {
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_blocked", true).Error
}

// UnblockUser unblocks a user
func UnblockUser(userID uint) error {
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_blocked", false).Error
}
