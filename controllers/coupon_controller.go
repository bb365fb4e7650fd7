package controllers

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var couponCodePattern = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// CouponRequest is the body of coupon create and update calls.
// On update, nil fields keep their current value.
type CouponRequest struct {
	Code           *string    `json:"code"`
	Description    *string    `json:"description"`
	Type           *string    `json:"type"`
	Value          *float64   `json:"value"`
	MinOrderAmount *float64   `json:"min_order_amount"`
	MaxDiscount    *float64   `json:"max_discount"`
	UsageLimit     *int       `json:"usage_limit"`
	ExpiresAt      *time.Time `json:"expires_at"`
	ClearExpiry    bool       `json:"clear_expiry"`
	IsActive       *bool      `json:"is_active"`
}

// applyTo validates the request against coupon and copies it over.
// When create is true the code, type and value must be present.
func (r *CouponRequest) applyTo(coupon *models.Coupon, create bool, now time.Time) error {
	if create {
		switch {
		case r.Code == nil:
			return errors.New("code is required")
		case r.Type == nil:
			return errors.New("type is required")
		case r.Value == nil:
			return errors.New("value is required")
		}
	}

	if r.Code != nil {
		code := utils.NormalizeCouponCode(*r.Code)
		if !couponCodePattern.MatchString(code) {
			return errors.New("code must be 3-32 characters of letters, digits, '-' or '_'")
		}
		coupon.Code = code
	}
	if r.Description != nil {
		coupon.Description = strings.TrimSpace(*r.Description)
	}
	if r.Type != nil {
		coupon.Type = strings.ToLower(strings.TrimSpace(*r.Type))
	}
	if r.Value != nil {
		coupon.Value = *r.Value
	}
	if r.MaxDiscount != nil {
		coupon.MaxDiscount = *r.MaxDiscount
	}
	if err := utils.ValidateDiscount(coupon.Type, coupon.Value, coupon.MaxDiscount); err != nil {
		return err
	}
	if r.MinOrderAmount != nil {
		if *r.MinOrderAmount < 0 {
			return errors.New("min_order_amount cannot be negative")
		}
		coupon.MinOrderAmount = *r.MinOrderAmount
	}
	if r.UsageLimit != nil {
		if *r.UsageLimit < 0 {
			return errors.New("usage_limit cannot be negative")
		}
		coupon.UsageLimit = *r.UsageLimit
	}
	if r.ClearExpiry {
		coupon.ExpiresAt = nil
	} else if r.ExpiresAt != nil {
		if !r.ExpiresAt.After(now) {
			return errors.New("expires_at must be in the future")
		}
		expires := *r.ExpiresAt
		coupon.ExpiresAt = &expires
	}
	if r.IsActive != nil {
		coupon.IsActive = *r.IsActive
	}
	return nil
}

func couponStatus(coupon *models.Coupon, now time.Time) string {
	switch {
	case !coupon.IsActive:
		return "inactive"
	case coupon.IsExpired(now):
		return "expired"
	case coupon.IsExhausted():
		return "exhausted"
	default:
		return "active"
	}
}

func couponResponse(coupon models.Coupon, now time.Time) gin.H {
	return gin.H{
		"coupon": coupon,
		"status": couponStatus(&coupon, now),
	}
}

// CreateCoupon creates a coupon. Codes are stored uppercase and must be unique.
func CreateCoupon(c *gin.Context) {
	utils.LogInfo("CreateCoupon called")

	var req CouponRequest
	if !bindJSON(c, &req) {
		return
	}

	now := time.Now()
	coupon := models.Coupon{IsActive: true}
	if err := req.applyTo(&coupon, true, now); err != nil {
		utils.LogError("Coupon validation failed: %v", err)
		utils.BadRequest(c, "Validation failed", err.Error())
		return
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		if errors.Is(utils.ClassifyDBError(err), utils.ErrDuplicate) {
			utils.BadRequest(c, "Coupon code already exists", nil)
			return
		}
		utils.RespondError(c, "Failed to create coupon", err)
		return
	}

	utils.LogInfo("Coupon created: %s", coupon.Code)
	utils.Created(c, "Coupon created successfully", couponResponse(coupon, now))
}

// ListCoupons lists coupons, optionally filtered by ?active=true|false
func ListCoupons(c *gin.Context) {
	utils.LogInfo("ListCoupons called")

	query := config.DB.Model(&models.Coupon{})
	if active := c.Query("active"); active != "" {
		v, err := strconv.ParseBool(active)
		if err != nil {
			utils.BadRequest(c, "Invalid active filter", nil)
			return
		}
		query = query.Where("is_active = ?", v)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("code ILIKE ?", "%"+search+"%")
	}

	pagination := utils.NewPagination(c)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, "Failed to count coupons", err)
		return
	}
	pagination.SetTotal(total)

	var coupons []models.Coupon
	if err := pagination.Scope(query.Order("created_at DESC")).Find(&coupons).Error; err != nil {
		utils.RespondError(c, "Failed to fetch coupons", err)
		return
	}

	now := time.Now()
	items := make([]gin.H, 0, len(coupons))
	for _, coupon := range coupons {
		items = append(items, couponResponse(coupon, now))
	}
	utils.SuccessWithPagination(c, "Coupons retrieved successfully", items, pagination)
}

// GetCoupon returns one coupon
func GetCoupon(c *gin.Context) {
	utils.LogInfo("GetCoupon called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, id).Error; err != nil {
		utils.RespondError(c, "Coupon", err)
		return
	}
	utils.Success(c, "Coupon retrieved successfully", couponResponse(coupon, time.Now()))
}

// UpdateCoupon edits a coupon
func UpdateCoupon(c *gin.Context) {
	utils.LogInfo("UpdateCoupon called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CouponRequest
	if !bindJSON(c, &req) {
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, id).Error; err != nil {
		utils.RespondError(c, "Coupon", err)
		return
	}

	now := time.Now()
	if err := req.applyTo(&coupon, false, now); err != nil {
		utils.LogError("Coupon validation failed: %v", err)
		utils.BadRequest(c, "Validation failed", err.Error())
		return
	}
	if coupon.UsageLimit > 0 && coupon.UsageLimit < coupon.UsedCount {
		utils.BadRequest(c, "usage_limit cannot be below the number of uses so far", gin.H{"used_count": coupon.UsedCount})
		return
	}

	// used_count is owned by order placement and never written here
	err := config.DB.Model(&coupon).Select(
		"code", "description", "type", "value", "min_order_amount",
		"max_discount", "usage_limit", "expires_at", "is_active",
	).Updates(&coupon).Error
	if err != nil {
		if errors.Is(utils.ClassifyDBError(err), utils.ErrDuplicate) {
			utils.BadRequest(c, "Coupon code already exists", nil)
			return
		}
		utils.RespondError(c, "Failed to update coupon", err)
		return
	}

	utils.LogInfo("Coupon updated: %s", coupon.Code)
	utils.Success(c, "Coupon updated successfully", couponResponse(coupon, now))
}

// DeleteCoupon removes a coupon. Orders keep their applied coupon snapshot.
func DeleteCoupon(c *gin.Context) {
	utils.LogInfo("DeleteCoupon called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := config.DB.Delete(&models.Coupon{}, id)
	if res.Error != nil {
		utils.RespondError(c, "Failed to delete coupon", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "Coupon not found")
		return
	}
	utils.LogInfo("Coupon %d deleted", id)
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}

// ToggleCoupon flips a coupon's active flag
func ToggleCoupon(c *gin.Context) {
	utils.LogInfo("ToggleCoupon called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var coupon models.Coupon
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&coupon, id).Error; err != nil {
			return err
		}
		coupon.IsActive = !coupon.IsActive
		return tx.Model(&coupon).Update("is_active", coupon.IsActive).Error
	})
	if err != nil {
		utils.RespondError(c, "Coupon", err)
		return
	}

	utils.LogInfo("Coupon %s active=%v", coupon.Code, coupon.IsActive)
	utils.Success(c, "Coupon status updated", couponResponse(coupon, time.Now()))
}
