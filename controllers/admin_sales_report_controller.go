package controllers

import (
	"strconv"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

const maxTopProducts = 50

func topProductsLimit(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("limit", strconv.Itoa(utils.DefaultTopProducts))
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxTopProducts {
		utils.BadRequest(c, "Invalid limit", gin.H{"min": 1, "max": maxTopProducts})
		return 0, false
	}
	return limit, true
}

// GetRevenueSummary returns total, weekly and monthly revenue with trends
func GetRevenueSummary(c *gin.Context) {
	utils.LogInfo("GetRevenueSummary called")

	summary, err := utils.GetRevenueSummary(c.Request.Context(), config.DB, time.Now())
	if err != nil {
		utils.RespondError(c, "Failed to compute revenue summary", err)
		return
	}
	utils.Success(c, "Revenue summary retrieved successfully", summary)
}

// GetTopProducts ranks products by units sold
func GetTopProducts(c *gin.Context) {
	utils.LogInfo("GetTopProducts called")
	limit, ok := topProductsLimit(c)
	if !ok {
		return
	}

	top, err := utils.GetTopProducts(c.Request.Context(), config.DB, limit)
	if err != nil {
		utils.RespondError(c, "Failed to compute top products", err)
		return
	}
	utils.Success(c, "Top products retrieved successfully", top)
}

// GetSalesSeries returns bucketed revenue for ?period=7d|30d|90d|1y|all
func GetSalesSeries(c *gin.Context) {
	utils.LogInfo("GetSalesSeries called")
	period := c.DefaultQuery("period", "30d")

	series, err := utils.GetSalesSeries(c.Request.Context(), config.DB, period, time.Now())
	if err != nil {
		utils.RespondError(c, "Failed to compute sales series", err)
		return
	}
	utils.LogDebug("Sales series %s: %d %s buckets", period, len(series.Points), series.Granularity)
	utils.Success(c, "Sales series retrieved successfully", series)
}
