package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// Health reports whether the API and its database are reachable
func Health(c *gin.Context) {
	status := gin.H{"app": utils.AppName, "version": utils.APIVersion, "database": "up"}

	if config.DB == nil {
		status["database"] = "not configured"
		utils.Error(c, http.StatusServiceUnavailable, "Service unavailable", status)
		return
	}
	sqlDB, err := config.DB.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		utils.LogError("Health check failed: %v", err)
		status["database"] = "down"
		utils.Error(c, http.StatusServiceUnavailable, "Service unavailable", status)
		return
	}
	utils.Success(c, "OK", status)
}

// Metrics returns request latency percentiles since start or the last reset.
// ?reset=true clears the histogram after reading it.
func Metrics(c *gin.Context) {
	utils.LogInfo("Metrics called")
	snapshot := utils.RequestLatency.Snapshot()
	if c.Query("reset") == "true" {
		utils.RequestLatency.Reset()
	}
	utils.Success(c, "Metrics retrieved successfully", gin.H{"request_latency_ms": snapshot})
}
