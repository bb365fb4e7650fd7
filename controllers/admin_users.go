package controllers

import (
	"strings"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var userSortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
	"email":      "email",
	"last_login": "last_login_at",
}

// userOrder turns sort_by and order query values into an ORDER BY clause
func userOrder(sortBy, order string) (string, bool) {
	column, ok := userSortColumns[sortBy]
	if !ok {
		return "", false
	}
	order = strings.ToLower(order)
	if order != "asc" && order != "desc" {
		return "", false
	}
	return column + " " + strings.ToUpper(order), true
}

// GetUsers lists customers with search, pagination and sorting
func GetUsers(c *gin.Context) {
	utils.LogInfo("GetUsers called")

	orderBy, ok := userOrder(c.DefaultQuery("sort_by", "created_at"), c.DefaultQuery("order", "desc"))
	if !ok {
		utils.BadRequest(c, "Invalid sort parameters", gin.H{"sort_by": []string{"created_at", "name", "email", "last_login"}, "order": []string{"asc", "desc"}})
		return
	}

	query := config.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		term := "%" + search + "%"
		utils.LogDebug("Applying user search: %s", search)
		query = query.Where("email ILIKE ? OR name ILIKE ? OR profile_phone ILIKE ?", term, term, term)
	}
	if blocked := c.Query("blocked"); blocked != "" {
		query = query.Where("is_blocked = ?", blocked == "true")
	}

	pagination := utils.NewPagination(c)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondError(c, "Failed to count users", err)
		return
	}
	pagination.SetTotal(total)

	var users []models.User
	if err := pagination.Scope(query.Order(orderBy)).Find(&users).Error; err != nil {
		utils.RespondError(c, "Failed to fetch users", err)
		return
	}

	items := make([]gin.H, 0, len(users))
	for _, u := range users {
		items = append(items, userResponse(u))
	}
	utils.SuccessWithPagination(c, "Users retrieved successfully", items, pagination)
}

// GetUser returns one customer with order statistics
func GetUser(c *gin.Context) {
	utils.LogInfo("GetUser called")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := utils.GetUserByID(id)
	if err != nil {
		utils.RespondError(c, "User", err)
		return
	}

	var stats struct {
		Orders int64
		Spent  float64
	}
	err = config.DB.Model(&models.Order{}).
		Select("COUNT(*) AS orders, COALESCE(SUM(total), 0) AS spent").
		Where("user_id = ?", id).
		Scan(&stats).Error
	if err != nil {
		utils.RespondError(c, "Failed to load order statistics", err)
		return
	}

	resp := userResponse(*user)
	resp["order_count"] = stats.Orders
	resp["total_spent"] = utils.RoundPrice(stats.Spent)
	utils.Success(c, "User retrieved successfully", resp)
}

// loadCustomer fetches a user and rejects the admin account
func loadCustomer(c *gin.Context) (*models.User, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}
	user, err := utils.GetUserByID(id)
	if err != nil {
		utils.RespondError(c, "User", err)
		return nil, false
	}
	if user.IsAdmin() {
		utils.Forbidden(c, "The admin account cannot be modified here")
		return nil, false
	}
	return user, true
}

// BlockUser blocks a customer
func BlockUser(c *gin.Context) {
	utils.LogInfo("BlockUser called")
	user, ok := loadCustomer(c)
	if !ok {
		return
	}
	if user.IsBlocked {
		utils.BadRequest(c, "User is already blocked", nil)
		return
	}
	if err := utils.BlockUser(user.ID); err != nil {
		utils.RespondError(c, "Failed to block user", err)
		return
	}
	utils.LogInfo("User blocked: %d %s", user.ID, user.Email)
	utils.Success(c, utils.MsgBlockSuccess, gin.H{"id": user.ID, "is_blocked": true})
}

// UnblockUser unblocks a customer
func UnblockUser(c *gin.Context) {
	utils.LogInfo("UnblockUser called")
	user, ok := loadCustomer(c)
	if !ok {
		return
	}
	if !user.IsBlocked {
		utils.BadRequest(c, "User is not blocked", nil)
		return
	}
	if err := utils.UnblockUser(user.ID); err != nil {
		utils.RespondError(c, "Failed to unblock user", err)
		return
	}
	utils.LogInfo("User unblocked: %d %s", user.ID, user.Email)
	utils.Success(c, utils.MsgUnblockSuccess, gin.H{"id": user.ID, "is_blocked": false})
}

// DeleteUser soft-deletes a customer and their cart and wishlist. Orders are kept.
func DeleteUser(c *gin.Context) {
	utils.LogInfo("DeleteUser called")
	user, ok := loadCustomer(c)
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Wishlist{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		utils.RespondError(c, "Failed to delete user", err)
		return
	}
	utils.LogInfo("User deleted: %d %s", user.ID, user.Email)
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
