package controllers

import (
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// DashboardCounts are the headline numbers on the admin dashboard
type DashboardCounts struct {
	Products         int64 `json:"products"`
	ActiveProducts   int64 `json:"active_products"`
	LowStockProducts int64 `json:"low_stock_products"`
	Customers        int64 `json:"customers"`
	Orders           int64 `json:"orders"`
	PendingOrders    int64 `json:"pending_orders"`
	Notifications    int64 `json:"unread_notifications"`
}

// OrderOverview is an order row on a dashboard
type OrderOverview struct {
	OrderNumber int64     `json:"order_number"`
	Customer    string    `json:"customer"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func orderOverviews(orders []models.Order) []OrderOverview {
	out := make([]OrderOverview, 0, len(orders))
	for _, o := range orders {
		count := 0
		for _, item := range o.Items {
			count += item.Quantity
		}
		out = append(out, OrderOverview{
			OrderNumber: o.OrderNumber,
			Customer:    o.Customer.Name,
			Status:      o.Status,
			Total:       o.Total,
			ItemCount:   count,
			CreatedAt:   o.CreatedAt,
		})
	}
	return out
}

// GetDashboardOverview returns counts, revenue and recent activity for the admin.
// The independent queries run concurrently.
func GetDashboardOverview(c *gin.Context) {
	utils.LogInfo("GetDashboardOverview called")

	g, ctx := errgroup.WithContext(c.Request.Context())
	db := config.DB.WithContext(ctx)
	threshold := config.Current().Tunables.LowStockThreshold

	var counts DashboardCounts
	var summary *utils.RevenueSummary
	var recent []models.Order
	var top []utils.TopProduct

	g.Go(func() error { return db.Model(&models.Product{}).Count(&counts.Products).Error })
	g.Go(func() error {
		return db.Model(&models.Product{}).Where("is_active = ?", true).Count(&counts.ActiveProducts).Error
	})
	g.Go(func() error {
		return db.Model(&models.Product{}).Where("stock <= ?", threshold).Count(&counts.LowStockProducts).Error
	})
	g.Go(func() error {
		return db.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&counts.Customers).Error
	})
	g.Go(func() error { return db.Model(&models.Order{}).Count(&counts.Orders).Error })
	g.Go(func() error {
		return db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&counts.PendingOrders).Error
	})
	g.Go(func() error {
		if utils.Notifications == nil {
			return nil
		}
		n, err := utils.Notifications.CountUnread(ctx)
		counts.Notifications = n
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = utils.GetRevenueSummary(ctx, config.DB, time.Now())
		return err
	})
	g.Go(func() error {
		return db.Preload("Items").Order("created_at DESC").Limit(utils.RecentOrdersLimit).Find(&recent).Error
	})
	g.Go(func() error {
		var err error
		top, err = utils.GetTopProducts(ctx, config.DB, utils.DefaultTopProducts)
		return err
	})

	if err := g.Wait(); err != nil {
		utils.RespondError(c, "Failed to load dashboard", err)
		return
	}

	utils.Success(c, "Dashboard retrieved successfully", gin.H{
		"counts":        counts,
		"revenue":       summary,
		"recent_orders": orderOverviews(recent),
		"top_products":  top,
	})
}

// CustomerDashboard summarises the signed-in customer's activity
func CustomerDashboard(c *gin.Context) {
	utils.LogInfo("CustomerDashboard called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	g, ctx := errgroup.WithContext(c.Request.Context())
	db := config.DB.WithContext(ctx)

	var orderCount, cartCount, wishlistCount int64
	var spent struct{ Total float64 }
	var recent []models.Order

	g.Go(func() error { return db.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&orderCount).Error })
	g.Go(func() error {
		return db.Model(&models.Order{}).
			Select("COALESCE(SUM(total), 0) AS total").
			Where("user_id = ? AND status <> ?", user.ID, models.OrderStatusCancelled).
			Scan(&spent).Error
	})
	g.Go(func() error { return db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&cartCount).Error })
	g.Go(func() error {
		return db.Model(&models.Wishlist{}).Where("user_id = ?", user.ID).Count(&wishlistCount).Error
	})
	g.Go(func() error {
		return db.Preload("Items").Where("user_id = ?", user.ID).Order("created_at DESC").Limit(utils.RecentOrdersLimit).Find(&recent).Error
	})

	if err := g.Wait(); err != nil {
		utils.RespondError(c, "Failed to load dashboard", err)
		return
	}

	utils.Success(c, "Dashboard retrieved successfully", gin.H{
		"user":           userResponse(user),
		"order_count":    orderCount,
		"total_spent":    utils.RoundPrice(spent.Total),
		"cart_items":     cartCount,
		"wishlist_items": wishlistCount,
		"recent_orders":  orderOverviews(recent),
	})
}
