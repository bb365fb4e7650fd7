package routes

import (
	"github.com/Govind-619/ShopSphere/controllers"
	"github.com/Govind-619/ShopSphere/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes the auth, public and customer routes
func initUserRoutes(router *gin.Engine) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/verify-otp", controllers.VerifyResetOTP)
		auth.POST("/reset-password", controllers.ResetPassword)
		auth.GET("/me", middleware.AuthMiddleware(), controllers.Me)
	}

	// Public routes (no authentication required)
	public := router.Group("/public")
	{
		public.GET("/products", controllers.ListProducts)
		public.GET("/products/:id", controllers.GetProduct)
		public.GET("/categories", controllers.ListCategories)
		public.GET("/settings", controllers.PublicSettings)
	}

	customer := router.Group("/customer")
	customer.Use(middleware.AuthMiddleware(), middleware.CustomerMiddleware())
	{
		customer.GET("/dashboard", controllers.CustomerDashboard)

		// Profile
		customer.GET("/profile", controllers.GetProfile)
		customer.PUT("/profile", controllers.UpdateProfile)
		customer.PUT("/password", controllers.ChangePassword)

		// Catalog
		customer.GET("/products", controllers.ListProducts)
		customer.GET("/products/:id", controllers.GetProduct)

		// Cart
		customer.GET("/cart", controllers.GetCart)
		customer.POST("/cart", controllers.AddToCart)
		customer.PUT("/cart/:id", controllers.UpdateCartItem)
		customer.DELETE("/cart/:id", controllers.RemoveFromCart)
		customer.DELETE("/cart", controllers.ClearCart)

		// Wishlist
		customer.GET("/wishlist", controllers.GetWishlist)
		customer.POST("/wishlist", controllers.AddToWishlist)
		customer.DELETE("/wishlist/:id", controllers.RemoveFromWishlist)
		customer.POST("/wishlist/:id/move-to-cart", controllers.MoveToCart)

		// Coupons and checkout
		customer.GET("/coupons", controllers.ListAvailableCoupons)
		customer.POST("/coupons/validate", controllers.ValidateCoupon)
		customer.POST("/checkout/preview", controllers.PreviewCheckout)

		// Orders
		customer.POST("/orders", controllers.PlaceOrder)
		customer.GET("/orders", controllers.ListMyOrders)
		customer.GET("/orders/:number", controllers.GetMyOrder)
		customer.GET("/orders/:number/invoice", controllers.DownloadInvoice)
	}
}
