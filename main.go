package main

import (
	"context"
	"log"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/controllers"
	"github.com/Govind-619/ShopSphere/routes"
	"github.com/Govind-619/ShopSphere/utils"
)

func main() {
	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	// Initialize logger
	if err := utils.InitLogger(cfg.LogDir); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Initialize database
	if err := config.ConnectDatabase(cfg); err != nil {
		utils.LogError("Database initialization failed: %v", err)
		log.Fatal("Database initialization failed:", err)
	}

	if err := config.ConnectMongo(context.Background(), cfg); err != nil {
		utils.LogError("Mongo initialization failed: %v", err)
		log.Fatal("Mongo initialization failed:", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := config.DisconnectMongo(ctx); err != nil {
			utils.LogError("Mongo disconnect failed: %v", err)
		}
	}()
	utils.Notifications = utils.NewNotificationStore(config.DB, config.Mongo)

	// Provision the admin account
	if err := controllers.SeedAdmin(cfg); err != nil {
		utils.LogError("Failed to provision admin: %v", err)
		log.Fatal("Failed to provision admin:", err)
	}

	// Set up router
	router := routes.SetupRouter(cfg)

	utils.LogInfo("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
