package controllers

import (
	"errors"
	"fmt"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxCartQuantity caps a single cart line
const MaxCartQuantity = 99

// AddToCartRequest adds quantity of a product to the cart
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// UpdateCartRequest sets the quantity of a cart line
type UpdateCartRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func validateCartQuantity(qty int) error {
	if qty < 1 {
		return errors.New("quantity must be at least 1")
	}
	if qty > MaxCartQuantity {
		return fmt.Errorf("quantity cannot exceed %d", MaxCartQuantity)
	}
	return nil
}

// addToCart merges qty of productID into the user's cart inside tx.
// The product row is locked so the stock check and the write see the same stock.
func addToCart(tx *gorm.DB, userID, productID uint, qty int) (*models.Cart, error) {
	var product models.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, productID).Error; err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, fmt.Errorf("%w: %s is not available", utils.ErrInvalidItem, product.Title)
	}

	var entry models.Cart
	err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&entry).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	total := entry.Quantity + qty
	if total > product.Stock {
		return nil, fmt.Errorf("%w: only %d of %s available", utils.ErrInsufficientStock, product.Stock, product.Title)
	}
	if err := validateCartQuantity(total); err != nil {
		return nil, utils.BadRequestError(err.Error(), nil)
	}

	if entry.ID == 0 {
		entry = models.Cart{UserID: userID, ProductID: productID, Quantity: total}
		return &entry, tx.Create(&entry).Error
	}
	return &entry, tx.Model(&entry).Update("quantity", total).Error
}

// GetCart returns the customer's cart priced at the current moment
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	details, err := utils.GetCartDetails(c.Request.Context(), config.DB, user.ID)
	if err != nil {
		utils.RespondError(c, "Failed to fetch cart", err)
		return
	}
	utils.Success(c, "Cart retrieved successfully", details)
}

// AddToCart adds a product to the cart, merging with an existing line
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := validateCartQuantity(req.Quantity); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		_, err := addToCart(tx, user.ID, req.ProductID, req.Quantity)
		return err
	})
	if err != nil {
		utils.LogError("Add to cart failed for user %d product %d: %v", user.ID, req.ProductID, err)
		utils.RespondError(c, "Product", err)
		return
	}

	details, err := utils.GetCartDetails(c.Request.Context(), config.DB, user.ID)
	if err != nil {
		utils.RespondError(c, "Failed to fetch cart", err)
		return
	}
	utils.LogInfo("Added product %d x%d to cart of user %d", req.ProductID, req.Quantity, user.ID)
	utils.Success(c, "Product added to cart", details)
}

// UpdateCartItem sets the quantity of the cart line for :id (a product id)
func UpdateCartItem(c *gin.Context) {
	utils.LogInfo("UpdateCartItem called")
	user, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateCartRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validateCartQuantity(req.Quantity); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, productID).Error; err != nil {
			return err
		}
		if req.Quantity > product.Stock {
			return fmt.Errorf("%w: only %d of %s available", utils.ErrInsufficientStock, product.Stock, product.Title)
		}
		res := tx.Model(&models.Cart{}).
			Where("user_id = ? AND product_id = ?", user.ID, productID).
			Update("quantity", req.Quantity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NotFoundError("Item not in cart", nil)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, "Product", err)
		return
	}

	details, err := utils.GetCartDetails(c.Request.Context(), config.DB, user.ID)
	if err != nil {
		utils.RespondError(c, "Failed to fetch cart", err)
		return
	}
	utils.Success(c, "Cart updated successfully", details)
}

// RemoveFromCart deletes the cart line for :id (a product id)
func RemoveFromCart(c *gin.Context) {
	utils.LogInfo("RemoveFromCart called")
	user, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := config.DB.Where("user_id = ? AND product_id = ?", user.ID, productID).Delete(&models.Cart{})
	if res.Error != nil {
		utils.RespondError(c, "Failed to remove item", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "Item not in cart")
		return
	}

	utils.LogInfo("Removed product %d from cart of user %d", productID, user.ID)
	utils.Success(c, "Item removed from cart", nil)
}

// ClearCart empties the customer's cart
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	res := config.DB.Where("user_id = ?", user.ID).Delete(&models.Cart{})
	if res.Error != nil {
		utils.RespondError(c, "Failed to clear cart", res.Error)
		return
	}
	utils.LogInfo("Cleared %d cart items for user %d", res.RowsAffected, user.ID)
	utils.Success(c, "Cart cleared successfully", gin.H{"removed": res.RowsAffected})
}
