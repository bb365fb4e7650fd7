package controllers

import (
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WishlistRequest names a product for the wishlist
type WishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// WishlistItem is a wishlist entry with the product's current price
type WishlistItem struct {
	ProductID  uint      `json:"product_id"`
	Title      string    `json:"title"`
	Image      string    `json:"image,omitempty"`
	Price      float64   `json:"price"`
	FinalPrice float64   `json:"final_price"`
	InStock    bool      `json:"in_stock"`
	Available  bool      `json:"available"`
	AddedAt    time.Time `json:"added_at"`
}

// GetWishlist lists the customer's wishlist
func GetWishlist(c *gin.Context) {
	utils.LogInfo("GetWishlist called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var entries []models.Wishlist
	if err := config.DB.Preload("Product").Where("user_id = ?", user.ID).Order("created_at DESC").Find(&entries).Error; err != nil {
		utils.RespondError(c, "Failed to fetch wishlist", err)
		return
	}

	now := time.Now()
	items := make([]WishlistItem, 0, len(entries))
	for _, entry := range entries {
		p := entry.Product
		items = append(items, WishlistItem{
			ProductID:  entry.ProductID,
			Title:      p.Title,
			Image:      p.PrimaryImage(),
			Price:      p.Price,
			FinalPrice: utils.FinalPrice(&p, now),
			InStock:    p.Stock > 0,
			Available:  p.ID != 0 && p.IsActive,
			AddedAt:    entry.CreatedAt,
		})
	}
	utils.Success(c, "Wishlist retrieved successfully", gin.H{"items": items, "count": len(items)})
}

// AddToWishlist adds a product to the wishlist. Adding it twice is a no-op.
func AddToWishlist(c *gin.Context) {
	utils.LogInfo("AddToWishlist called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req WishlistRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := utils.GetAvailableProduct(req.ProductID); err != nil {
		utils.RespondError(c, "Product", err)
		return
	}

	entry := models.Wishlist{UserID: user.ID, ProductID: req.ProductID}
	res := config.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
	if res.Error != nil {
		utils.RespondError(c, "Failed to add to wishlist", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Success(c, "Product already in wishlist", gin.H{"product_id": req.ProductID})
		return
	}

	utils.LogInfo("Added product %d to wishlist of user %d", req.ProductID, user.ID)
	utils.Created(c, "Product added to wishlist", gin.H{"product_id": req.ProductID})
}

// RemoveFromWishlist deletes the wishlist entry for :id (a product id)
func RemoveFromWishlist(c *gin.Context) {
	utils.LogInfo("RemoveFromWishlist called")
	user, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := config.DB.Where("user_id = ? AND product_id = ?", user.ID, productID).Delete(&models.Wishlist{})
	if res.Error != nil {
		utils.RespondError(c, "Failed to remove from wishlist", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "Item not in wishlist")
		return
	}
	utils.Success(c, "Item removed from wishlist", nil)
}

// MoveToCart moves a wishlist entry into the cart with quantity one
func MoveToCart(c *gin.Context) {
	utils.LogInfo("MoveToCart called")
	user, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := paramID(c, "id")
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND product_id = ?", user.ID, productID).Delete(&models.Wishlist{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NotFoundError("Item not in wishlist", nil)
		}
		_, err := addToCart(tx, user.ID, productID, 1)
		return err
	})
	if err != nil {
		utils.LogError("Move to cart failed for user %d product %d: %v", user.ID, productID, err)
		utils.RespondError(c, "Product", err)
		return
	}

	details, err := utils.GetCartDetails(c.Request.Context(), config.DB, user.ID)
	if err != nil {
		utils.RespondError(c, "Failed to fetch cart", err)
		return
	}
	utils.LogInfo("Moved product %d to cart for user %d", productID, user.ID)
	utils.Success(c, "Product moved to cart", details)
}
