package controllers

import (
	"strconv"

	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

func notificationStore(c *gin.Context) (utils.NotificationStore, bool) {
	if utils.Notifications == nil {
		utils.LogError("Notification store not configured")
		utils.InternalServerError(c, "Notifications are unavailable", nil)
		return nil, false
	}
	return utils.Notifications, true
}

// ListNotifications lists admin notifications, newest first. ?unread=true limits to unread ones.
func ListNotifications(c *gin.Context) {
	utils.LogInfo("ListNotifications called")
	store, ok := notificationStore(c)
	if !ok {
		return
	}

	unreadOnly := false
	if raw := c.Query("unread"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.BadRequest(c, "Invalid unread filter", nil)
			return
		}
		unreadOnly = v
	}

	pagination := utils.NewPagination(c)
	items, total, err := store.List(c.Request.Context(), unreadOnly, pagination.Offset, pagination.Limit)
	if err != nil {
		utils.RespondError(c, "Failed to fetch notifications", err)
		return
	}
	pagination.SetTotal(total)
	utils.SuccessWithPagination(c, "Notifications retrieved successfully", items, pagination)
}

// MarkNotificationRead marks one notification as read
func MarkNotificationRead(c *gin.Context) {
	utils.LogInfo("MarkNotificationRead called")
	store, ok := notificationStore(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := store.MarkRead(c.Request.Context(), id); err != nil {
		utils.RespondError(c, "Notification", err)
		return
	}
	utils.Success(c, "Notification marked as read", gin.H{"id": id})
}

// MarkAllNotificationsRead marks every notification as read
func MarkAllNotificationsRead(c *gin.Context) {
	utils.LogInfo("MarkAllNotificationsRead called")
	store, ok := notificationStore(c)
	if !ok {
		return
	}

	n, err := store.MarkAllRead(c.Request.Context())
	if err != nil {
		utils.RespondError(c, "Failed to update notifications", err)
		return
	}
	utils.Success(c, "All notifications marked as read", gin.H{"updated": n})
}
