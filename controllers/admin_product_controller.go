package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DiscountRequest describes a product discount. An empty type removes it.
type DiscountRequest struct {
	Type        string     `json:"type"`
	Value       float64    `json:"value"`
	MaxDiscount float64    `json:"max_discount"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

// ProductRequest is the body of create and update calls.
// On update, nil fields keep their current value.
type ProductRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *float64         `json:"price"`
	Category    *string          `json:"category"`
	Tags        []string         `json:"tags"`
	Images      []string         `json:"images"`
	Stock       *int             `json:"stock"`
	IsActive    *bool            `json:"is_active"`
	Discount    *DiscountRequest `json:"discount"`
}

// StockRequest adjusts stock by a delta or sets an absolute level
type StockRequest struct {
	Delta *int `json:"delta"`
	Stock *int `json:"stock"`
}

func (d *DiscountRequest) toModel() (models.Discount, error) {
	if d == nil || d.Type == "" {
		return models.Discount{}, nil
	}
	if err := utils.ValidateDiscount(d.Type, d.Value, d.MaxDiscount); err != nil {
		return models.Discount{}, err
	}
	if d.StartsAt != nil && d.EndsAt != nil && !d.EndsAt.After(*d.StartsAt) {
		return models.Discount{}, errors.New("discount ends_at must be after starts_at")
	}
	return models.Discount{
		Type:        d.Type,
		Value:       d.Value,
		MaxDiscount: d.MaxDiscount,
		StartsAt:    d.StartsAt,
		EndsAt:      d.EndsAt,
	}, nil
}

// applyTo validates the request and copies it onto p.
// When create is true the required fields must be present.
func (r *ProductRequest) applyTo(p *models.Product, create bool) error {
	if create {
		switch {
		case r.Title == nil:
			return errors.New("title is required")
		case r.Price == nil:
			return errors.New("price is required")
		case r.Category == nil:
			return errors.New("category is required")
		}
	}

	if r.Title != nil {
		title := utils.SanitizeString(*r.Title)
		if len(title) < 2 || len(title) > 200 {
			return errors.New("title must be between 2 and 200 characters")
		}
		p.Title = title
	}
	if r.Description != nil {
		description := strings.TrimSpace(*r.Description)
		if len(description) > 5000 {
			return errors.New("description must not exceed 5000 characters")
		}
		p.Description = description
	}
	if r.Price != nil {
		if *r.Price < 0 {
			return errors.New("price cannot be negative")
		}
		p.Price = utils.RoundPrice(*r.Price)
	}
	if r.Category != nil {
		category, ok := models.NormalizeCategory(*r.Category)
		if !ok {
			return fmt.Errorf("category must be one of %s", strings.Join(models.Categories, ", "))
		}
		p.Category = category
	}
	if r.Tags != nil {
		p.Tags = utils.NormalizeTags(r.Tags)
	}
	if r.Images != nil {
		images := make([]string, 0, len(r.Images))
		for _, img := range r.Images {
			if img = strings.TrimSpace(img); img != "" {
				images = append(images, img)
			}
		}
		p.Images = images
	}
	if r.Stock != nil {
		if *r.Stock < 0 {
			return errors.New("stock cannot be negative")
		}
		p.Stock = *r.Stock
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	if r.Discount != nil {
		discount, err := r.Discount.toModel()
		if err != nil {
			return err
		}
		p.Discount = discount
	}
	return nil
}

// CreateProduct adds a product to the catalog
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product := models.Product{IsActive: true}
	if err := req.applyTo(&product, true); err != nil {
		utils.LogError("Product validation failed: %v", err)
		utils.BadRequest(c, "Validation failed", err.Error())
		return
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, "Failed to create product", err)
		return
	}

	utils.LogInfo("Product created: %d %s", product.ID, product.Title)
	utils.Created(c, "Product created successfully", newProductResponse(product, time.Now()))
}

// UpdateProduct edits a product
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := utils.GetProductByID(id)
	if err != nil {
		utils.RespondError(c, "Product", err)
		return
	}
	if err := req.applyTo(product, false); err != nil {
		utils.LogError("Product validation failed: %v", err)
		utils.BadRequest(c, "Validation failed", err.Error())
		return
	}

	if err := saveProduct(config.DB, product, req.Stock != nil).Error; err != nil {
		utils.RespondError(c, "Failed to update product", err)
		return
	}

	utils.LogInfo("Product updated: %d", product.ID)
	utils.Success(c, "Product updated successfully", newProductResponse(*product, time.Now()))
}

// saveProduct writes every column of p. Stock is left to the database
// unless the admin set it, so concurrent order decrements are kept.
func saveProduct(db *gorm.DB, p *models.Product, stockChanged bool) *gorm.DB {
	if !stockChanged {
		db = db.Omit("stock")
	}
	return db.Save(p)
}

// DeleteProduct soft-deletes a product and drops it from carts and wishlists.
// Existing orders keep their snapshot.
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Product{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.Cart{}).Error; err != nil {
			return err
		}
		return tx.Where("product_id = ?", id).Delete(&models.Wishlist{}).Error
	})
	if err != nil {
		utils.RespondError(c, "Product", err)
		return
	}

	utils.LogInfo("Product deleted: %d", id)
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}

// ToggleProduct flips a product's active flag
func ToggleProduct(c *gin.Context) {
	utils.LogInfo("ToggleProduct called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := config.DB.Model(&models.Product{}).Where("id = ?", id).UpdateColumn("is_active", gorm.Expr("NOT is_active"))
	if res.Error != nil {
		utils.RespondError(c, "Failed to toggle product", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "Product not found")
		return
	}

	product, err := utils.GetProductByID(id)
	if err != nil {
		utils.RespondError(c, "Product", err)
		return
	}
	utils.LogInfo("Product %d active=%v", id, product.IsActive)
	utils.Success(c, "Product status updated", gin.H{"id": product.ID, "is_active": product.IsActive})
}

// AdjustStock changes a product's stock. Deltas that would go below zero are rejected.
func AdjustStock(c *gin.Context) {
	utils.LogInfo("AdjustStock called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req StockRequest
	if !bindJSON(c, &req) {
		return
	}
	if (req.Delta == nil) == (req.Stock == nil) {
		utils.BadRequest(c, "Provide exactly one of delta or stock", nil)
		return
	}

	if req.Stock != nil && *req.Stock < 0 {
		utils.BadRequest(c, "Stock cannot be negative", nil)
		return
	}

	query := config.DB.Model(&models.Product{}).Where("id = ?", id)
	var res *gorm.DB
	if req.Stock != nil {
		res = query.UpdateColumn("stock", *req.Stock)
	} else {
		res = query.Where("stock + ? >= 0", *req.Delta).UpdateColumn("stock", gorm.Expr("stock + ?", *req.Delta))
	}
	if res.Error != nil {
		utils.RespondError(c, "Failed to update stock", res.Error)
		return
	}

	product, err := utils.GetProductByID(id)
	if err != nil {
		utils.RespondError(c, "Product", err)
		return
	}
	if res.RowsAffected == 0 {
		utils.BadRequest(c, "Stock cannot go below zero", gin.H{"stock": product.Stock})
		return
	}

	if product.Stock <= config.Current().Tunables.LowStockThreshold {
		utils.Notify(c.Request.Context(), models.Notification{
			Type:      models.NotificationLowStock,
			Title:     "Low stock",
			Message:   fmt.Sprintf("%s has %d left in stock", product.Title, product.Stock),
			ProductID: product.ID,
		})
	}

	utils.LogInfo("Stock for product %d set to %d", id, product.Stock)
	utils.Success(c, "Stock updated successfully", gin.H{"id": product.ID, "stock": product.Stock})
}
