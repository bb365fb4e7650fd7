package controllers

import (
	"fmt"
	"strings"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest sets an order's status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminListOrders lists all orders. Filters: status, and search by order
// number or customer email.
func AdminListOrders(c *gin.Context) {
	utils.LogInfo("AdminListOrders called")

	query := config.DB.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		if !models.IsValidOrderStatus(status) {
			utils.BadRequest(c, "Invalid status filter", gin.H{"accepted": models.OrderStatuses})
			return
		}
		query = query.Where("status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		if number, ok := utils.ParseOrderNumber(search); ok {
			query = query.Where("order_number = ? OR customer_email ILIKE ?", number, "%"+search+"%")
		} else {
			query = query.Where("customer_email ILIKE ? OR customer_name ILIKE ?", "%"+search+"%", "%"+search+"%")
		}
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

// AdminGetOrder returns any order by number
func AdminGetOrder(c *gin.Context) {
	utils.LogInfo("AdminGetOrder called")
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	order, err := utils.GetOrderByNumber(number, 0)
	if err != nil {
		utils.RespondError(c, "Order", err)
		return
	}
	utils.Success(c, "Order retrieved successfully", order)
}

// UpdateOrderStatus sets an order to any of the known statuses
func UpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateOrderStatus called")
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !models.IsValidOrderStatus(status) {
		utils.BadRequest(c, "Invalid order status", gin.H{"accepted": models.OrderStatuses})
		return
	}

	order, err := utils.GetOrderByNumber(number, 0)
	if err != nil {
		utils.RespondError(c, "Order", err)
		return
	}
	previous := order.Status
	if err := config.DB.Model(order).Update("status", status).Error; err != nil {
		utils.RespondError(c, "Failed to update order status", err)
		return
	}
	order.Status = status

	utils.LogInfo("Order %d status %s -> %s", number, previous, status)
	if previous != status {
		utils.Notify(c.Request.Context(), models.Notification{
			Type:        models.NotificationOrderStatus,
			Title:       "Order status updated",
			Message:     fmt.Sprintf("Order #%d moved from %s to %s", number, previous, status),
			OrderNumber: number,
		})
	}
	utils.Success(c, "Order status updated", order)
}

// DeleteOrder removes an order and its items
func DeleteOrder(c *gin.Context) {
	utils.LogInfo("DeleteOrder called")
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	order, err := utils.GetOrderByNumber(number, 0)
	if err != nil {
		utils.RespondError(c, "Order", err)
		return
	}
	if err := config.DB.Select("Items").Delete(order).Error; err != nil {
		utils.RespondError(c, "Failed to delete order", err)
		return
	}

	utils.LogInfo("Order %d deleted", number)
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
