package controllers

import (
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// ListCategories returns the fixed category list with display labels
func ListCategories(c *gin.Context) {
	utils.LogInfo("ListCategories called")

	categories := make([]gin.H, 0, len(models.Categories))
	for _, name := range models.Categories {
		categories = append(categories, gin.H{
			"value": name,
			"label": utils.Title(name),
		})
	}
	utils.Success(c, "Categories retrieved successfully", categories)
}
