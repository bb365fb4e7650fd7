package controllers

import (
	"errors"
	"io"

	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// currentUser returns the authenticated user set by AuthMiddleware
func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, utils.MsgUnauthorized)
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.InternalServerError(c, "Internal server error", nil)
		return models.User{}, false
	}
	return user, true
}

// bindJSON binds the request body and writes a 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.LogError("Invalid request body for %s: %v", c.FullPath(), err)
		utils.BadRequest(c, utils.MsgInvalidRequest, err.Error())
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON for endpoints whose body may be omitted.
// An empty body, chunked or not, leaves req untouched.
func bindOptionalJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	utils.LogError("Invalid request body for %s: %v", c.FullPath(), err)
	utils.BadRequest(c, utils.MsgInvalidRequest, err.Error())
	return false
}

// paramID parses a numeric path parameter and writes a 400 on failure
func paramID(c *gin.Context, name string) (uint, bool) {
	id, ok := utils.ParseUintParam(c.Param(name))
	if !ok {
		utils.LogError("Invalid %s parameter: %q", name, c.Param(name))
		utils.BadRequest(c, utils.MsgInvalidID, nil)
	}
	return id, ok
}

// orderNumberParam parses the :number path parameter
func orderNumberParam(c *gin.Context) (int64, bool) {
	n, ok := utils.ParseOrderNumber(c.Param("number"))
	if !ok {
		utils.LogError("Invalid order number: %q", c.Param("number"))
		utils.BadRequest(c, "Invalid order number", nil)
	}
	return n, ok
}

func userResponse(u models.User) gin.H {
	return gin.H{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"role":          u.Role,
		"is_blocked":    u.IsBlocked,
		"profile":       u.Profile,
		"last_login_at": u.LastLoginAt,
		"created_at":    u.CreatedAt,
	}
}
