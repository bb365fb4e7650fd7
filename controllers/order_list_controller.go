package controllers

import (
	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// ListMyOrders returns the customer's order history, newest first
func ListMyOrders(c *gin.Context) {
	utils.LogInfo("ListMyOrders called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	query := config.DB.Model(&models.Order{}).Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		if !models.IsValidOrderStatus(status) {
			utils.BadRequest(c, "Invalid status filter", gin.H{"accepted": models.OrderStatuses})
			return
		}
		query = query.Where("status = ?", status)
	}

	pagination := utils.NewPagination(c)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, "Failed to count orders", err)
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := pagination.Scope(query.Preload("Items").Order("created_at DESC")).Find(&orders).Error; err != nil {
		utils.RespondError(c, "Failed to fetch orders", err)
		return
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", orders, pagination)
}

// GetMyOrder returns one of the customer's orders by number
func GetMyOrder(c *gin.Context) {
	utils.LogInfo("GetMyOrder called")
	user, ok := currentUser(c)
	if !ok {
		return
	}
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	order, err := utils.GetOrderByNumber(number, user.ID)
	if err != nil {
		utils.RespondError(c, "Order", err)
		return
	}
	utils.Success(c, "Order retrieved successfully", order)
}
