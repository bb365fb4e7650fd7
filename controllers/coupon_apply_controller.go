package controllers

import (
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// ValidateCouponRequest checks a coupon against explicit items or, when
// items are omitted, against the customer's cart
type ValidateCouponRequest struct {
	Code  string            `json:"code" binding:"required"`
	Items []utils.OrderLine `json:"items"`
}

// orderLinesOrCart returns items, or the customer's cart lines when items is empty
func orderLinesOrCart(c *gin.Context, userID uint, items []utils.OrderLine) ([]utils.OrderLine, error) {
	if len(items) > 0 {
		return items, nil
	}
	var entries []models.Cart
	if err := config.DB.WithContext(c.Request.Context()).Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return utils.CartOrderLines(entries), nil
}

// ValidateCoupon prices the order with the coupon applied, without reserving it
func ValidateCoupon(c *gin.Context) {
	utils.LogInfo("ValidateCoupon called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req ValidateCouponRequest
	if !bindJSON(c, &req) {
		return
	}

	lines, err := orderLinesOrCart(c, user.ID, req.Items)
	if err != nil {
		utils.RespondError(c, "Failed to load cart", err)
		return
	}

	quote, err := utils.QuoteOrder(c.Request.Context(), config.DB, lines, req.Code, time.Now())
	if err != nil {
		utils.LogError("Coupon %s rejected for user %d: %v", utils.NormalizeCouponCode(req.Code), user.ID, err)
		utils.RespondError(c, "Failed to validate coupon", err)
		return
	}

	utils.Success(c, "Coupon is valid", quote)
}

// ListAvailableCoupons lists active, unexpired coupons with uses left
func ListAvailableCoupons(c *gin.Context) {
	utils.LogInfo("ListAvailableCoupons called")

	now := time.Now()
	var coupons []models.Coupon
	err := config.DB.
		Where("is_active = ?", true).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Where("usage_limit = 0 OR used_count < usage_limit").
		Order("created_at DESC").
		Find(&coupons).Error
	if err != nil {
		utils.RespondError(c, "Failed to fetch coupons", err)
		return
	}

	items := make([]gin.H, 0, len(coupons))
	for _, coupon := range coupons {
		items = append(items, gin.H{
			"code":             coupon.Code,
			"description":      coupon.Description,
			"type":             coupon.Type,
			"value":            coupon.Value,
			"min_order_amount": coupon.MinOrderAmount,
			"max_discount":     coupon.MaxDiscount,
			"expires_at":       coupon.ExpiresAt,
		})
	}
	utils.Success(c, "Coupons retrieved successfully", items)
}
