package routes

import (
	"github.com/Govind-619/ShopSphere/controllers"
	"github.com/Govind-619/ShopSphere/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.Engine) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", controllers.GetDashboardOverview)
		admin.GET("/metrics", controllers.Metrics)

		// User management
		admin.GET("/users", controllers.GetUsers)
		admin.GET("/users/:id", controllers.GetUser)
		admin.PATCH("/users/:id/block", controllers.BlockUser)
		admin.PATCH("/users/:id/unblock", controllers.UnblockUser)
		admin.DELETE("/users/:id", controllers.DeleteUser)

		// Product management
		admin.GET("/products", controllers.AdminListProducts)
		admin.GET("/products/:id", controllers.AdminGetProduct)
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.PATCH("/products/:id/toggle", controllers.ToggleProduct)
		admin.PATCH("/products/:id/stock", controllers.AdjustStock)
		admin.POST("/products/:id/images", controllers.UploadProductImages)
		admin.DELETE("/products/:id/images", controllers.DeleteProductImage)

		// Coupon management
		admin.GET("/coupons", controllers.ListCoupons)
		admin.GET("/coupons/:id", controllers.GetCoupon)
		admin.POST("/coupons", controllers.CreateCoupon)
		admin.PUT("/coupons/:id", controllers.UpdateCoupon)
		admin.DELETE("/coupons/:id", controllers.DeleteCoupon)
		admin.PATCH("/coupons/:id/toggle", controllers.ToggleCoupon)

		// Order management
		admin.GET("/orders", controllers.AdminListOrders)
		admin.GET("/orders/:number", controllers.AdminGetOrder)
		admin.PATCH("/orders/:number/status", controllers.UpdateOrderStatus)
		admin.DELETE("/orders/:number", controllers.DeleteOrder)

		// Analytics
		admin.GET("/analytics/summary", controllers.GetRevenueSummary)
		admin.GET("/analytics/top-products", controllers.GetTopProducts)
		admin.GET("/analytics/sales", controllers.GetSalesSeries)
		admin.GET("/analytics/export", controllers.ExportSalesReport)

		// Notifications
		admin.GET("/notifications", controllers.ListNotifications)
		admin.PATCH("/notifications/:id/read", controllers.MarkNotificationRead)
		admin.PATCH("/notifications/read-all", controllers.MarkAllNotificationsRead)

		// Settings
		admin.GET("/settings", controllers.ListSettings)
		admin.GET("/settings/:key", controllers.GetSetting)
		admin.PUT("/settings/:key", controllers.UpsertSetting)
		admin.DELETE("/settings/:key", controllers.DeleteSetting)
	}
}
