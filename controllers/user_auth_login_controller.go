package controllers

import (
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a customer or the administrator
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Email = models.NormalizeEmail(req.Email)

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.LogError("Login attempt failed - Invalid email format: %s", req.Email)
		utils.BadRequest(c, "Invalid email", msg)
		return
	}

	user, err := utils.GetUserByEmail(req.Email)
	if err != nil {
		utils.LogError("Login attempt failed - User not found: %s", req.Email)
		utils.Unauthorized(c, utils.MsgInvalidCredentials)
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login attempt failed - Invalid password for user: %s", req.Email)
		utils.Unauthorized(c, utils.MsgInvalidCredentials)
		return
	}

	if user.IsBlocked {
		utils.LogError("Login attempt failed - Blocked account: %s", req.Email)
		utils.Forbidden(c, utils.MsgUserBlocked)
		return
	}

	now := time.Now()
	if err := config.DB.Model(user).UpdateColumn("last_login_at", now).Error; err != nil {
		utils.LogError("Failed to update last login time for user: %s", req.Email)
	}
	user.LastLoginAt = &now

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token", err)
		return
	}

	utils.LogInfo("User logged in successfully: %s (%s)", user.Email, user.Role)
	utils.Success(c, utils.MsgLoginSuccess, gin.H{
		"token":      token,
		"expires_in": int(config.Current().Tunables.TokenTTL.Seconds()),
		"user":       userResponse(*user),
	})
}

// Me returns the authenticated principal
func Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.Success(c, "Current user retrieved", userResponse(user))
}
