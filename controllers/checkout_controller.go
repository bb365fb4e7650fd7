package controllers

import (
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// CheckoutPreviewRequest is the body of a checkout preview. An empty body previews the cart.
type CheckoutPreviewRequest struct {
	Items      []utils.OrderLine `json:"items"`
	CouponCode string            `json:"coupon_code"`
}

// PreviewCheckout prices an order exactly as PlaceOrder would, without writing anything
func PreviewCheckout(c *gin.Context) {
	utils.LogInfo("PreviewCheckout called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CheckoutPreviewRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	lines, err := orderLinesOrCart(c, user.ID, req.Items)
	if err != nil {
		utils.RespondError(c, "Failed to load cart", err)
		return
	}

	quote, err := utils.QuoteOrder(c.Request.Context(), config.DB, lines, req.CouponCode, time.Now())
	if err != nil {
		utils.LogError("Checkout preview rejected for user %d: %v", user.ID, err)
		utils.RespondError(c, "Failed to preview checkout", err)
		return
	}

	utils.Success(c, "Checkout preview", gin.H{
		"quote":           quote,
		"payment_methods": paymentMethods(),
	})
}
