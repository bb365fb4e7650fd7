package controllers

import (
	"github.com/Govind-619/ShopSphere/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func testCustomer() models.User {
	return models.User{
		Model: gorm.Model{ID: 7},
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Role:  models.RoleCustomer,
	}
}

// testRouter returns a router whose requests run as user
func testRouter(user models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	})
	return r
}
