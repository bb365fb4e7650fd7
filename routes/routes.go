package routes

import (
	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/controllers"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = 8 << 20

	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", controllers.Health)
	router.Static("/uploads", utils.UploadDir)

	initUserRoutes(router)
	initAdminRoutes(router)

	return router
}
