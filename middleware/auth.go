package middleware

import (
	"net/http"
	"strings"

	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// LoadUser fetches the principal named by a verified token
var LoadUser = utils.GetUserByID

// AuthMiddleware verifies the bearer token and stores the user in the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogInfo("AuthMiddleware called")

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header")
			utils.AbortWithError(c, http.StatusUnauthorized, utils.MsgUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			utils.LogError("Invalid Bearer token format")
			utils.AbortWithError(c, http.StatusUnauthorized, utils.MsgUnauthorized)
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			utils.AbortWithError(c, http.StatusUnauthorized, utils.MsgInvalidToken)
			return
		}

		utils.LogDebug("Authenticating user ID: %d", claims.UserID)
		user, err := LoadUser(claims.UserID)
		if err != nil {
			utils.LogError("User %d not found: %v", claims.UserID, err)
			utils.AbortWithError(c, http.StatusUnauthorized, utils.MsgInvalidToken)
			return
		}

		if user.IsBlocked {
			utils.LogError("Blocked user attempted access: %d", user.ID)
			utils.AbortWithError(c, http.StatusForbidden, utils.MsgUserBlocked)
			return
		}

		c.Set("user", *user)
		c.Next()
	}
}

// AdminMiddleware allows only the administrator through
func AdminMiddleware() gin.HandlerFunc {
	return requireRole(models.RoleAdmin, utils.MsgAdminOnly)
}

// CustomerMiddleware allows only customers through
func CustomerMiddleware() gin.HandlerFunc {
	return requireRole(models.RoleCustomer, utils.MsgCustomerOnly)
}

func requireRole(role, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			utils.AbortWithError(c, http.StatusUnauthorized, utils.MsgUnauthorized)
			return
		}

		user, ok := userVal.(models.User)
		if !ok {
			utils.LogError("Invalid user type in context")
			utils.AbortWithError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		if user.Role != role {
			utils.LogError("User %d with role %s denied %s route", user.ID, user.Role, role)
			utils.AbortWithError(c, http.StatusForbidden, message)
			return
		}

		c.Next()
	}
}
