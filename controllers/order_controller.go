package controllers

import (
	"strings"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest is the body of a purchase. Items default to the cart and
// phone/address default to the customer's profile.
type PlaceOrderRequest struct {
	Items         []utils.OrderLine `json:"items"`
	CouponCode    string            `json:"coupon_code"`
	PaymentMethod string            `json:"payment_method"`
	Phone         string            `json:"phone"`
	Address       *models.Address   `json:"address"`
	Notes         string            `json:"notes"`
}

const maxOrderNotes = 500

func paymentMethods() []string {
	return models.PaymentMethods
}

// customerSnapshot builds the shipping details frozen onto an order
func customerSnapshot(user models.User, req PlaceOrderRequest) (models.CustomerSnapshot, utils.FieldValidationErrors) {
	var errs utils.FieldValidationErrors

	snapshot := models.CustomerSnapshot{
		Name:    user.Name,
		Email:   user.Email,
		Phone:   user.Profile.Phone,
		Address: user.Profile.Address,
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		if valid, msg := utils.ValidatePhone(phone); !valid {
			errs.Add("phone", msg)
		}
		snapshot.Phone = phone
	}
	if req.Address != nil {
		snapshot.Address = *req.Address
	}

	if snapshot.Address.IsZero() {
		errs.Add("address", "Shipping address is required")
		return snapshot, errs
	}
	errs = append(errs, utils.ValidateAddress(snapshot.Address)...)
	return snapshot, errs
}

// PlaceOrder purchases the given items, or the whole cart when items are omitted
func PlaceOrder(c *gin.Context) {
	utils.LogInfo("PlaceOrder called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	req.PaymentMethod = strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if req.PaymentMethod != "" && !models.IsValidPaymentMethod(req.PaymentMethod) {
		utils.BadRequest(c, "Invalid payment method", gin.H{"accepted": paymentMethods()})
		return
	}
	notes := utils.SanitizeString(req.Notes)
	if len(notes) > maxOrderNotes {
		utils.BadRequest(c, "Notes are too long", nil)
		return
	}

	snapshot, errs := customerSnapshot(user, req)
	if len(errs) > 0 {
		utils.LogError("Order rejected for user %d: %v", user.ID, errs)
		utils.BadRequest(c, "Validation failed", errs)
		return
	}

	lines, err := orderLinesOrCart(c, user.ID, req.Items)
	if err != nil {
		utils.RespondError(c, "Failed to load cart", err)
		return
	}

	order, err := utils.PlaceOrder(c.Request.Context(), config.DB, utils.PlaceOrderInput{
		UserID:        user.ID,
		Items:         lines,
		CouponCode:    req.CouponCode,
		PaymentMethod: req.PaymentMethod,
		Customer:      snapshot,
		Notes:         notes,
		Now:           time.Now(),
	})
	if err != nil {
		utils.LogError("Order rejected for user %d: %v", user.ID, err)
		utils.RespondError(c, "Failed to place order", err)
		return
	}

	utils.Created(c, "Order placed successfully", order)
}
