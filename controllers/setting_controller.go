package controllers

import (
	"regexp"
	"strings"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

var settingKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_.]{1,63}$`)

const maxSettingValue = 4096

// SettingRequest is the body of a setting upsert
type SettingRequest struct {
	Value    string `json:"value"`
	IsPublic bool   `json:"is_public"`
}

func settingKey(c *gin.Context) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(c.Param("key")))
	if !settingKeyPattern.MatchString(key) {
		utils.BadRequest(c, "Invalid setting key", "Keys are lowercase letters, digits, '_' or '.'")
		return "", false
	}
	return key, true
}

// ListSettings lists every setting
func ListSettings(c *gin.Context) {
	utils.LogInfo("ListSettings called")

	var settings []models.Setting
	if err := config.DB.Order("key").Find(&settings).Error; err != nil {
		utils.RespondError(c, "Failed to fetch settings", err)
		return
	}
	utils.Success(c, "Settings retrieved successfully", settings)
}

// GetSetting returns one setting by key
func GetSetting(c *gin.Context) {
	utils.LogInfo("GetSetting called")
	key, ok := settingKey(c)
	if !ok {
		return
	}

	var setting models.Setting
	if err := config.DB.Where("key = ?", key).First(&setting).Error; err != nil {
		utils.RespondError(c, "Setting", err)
		return
	}
	utils.Success(c, "Setting retrieved successfully", setting)
}

// UpsertSetting creates or replaces the setting at key
func UpsertSetting(c *gin.Context) {
	utils.LogInfo("UpsertSetting called")
	key, ok := settingKey(c)
	if !ok {
		return
	}

	var req SettingRequest
	if !bindJSON(c, &req) {
		return
	}
	if len(req.Value) > maxSettingValue {
		utils.BadRequest(c, "Setting value is too long", gin.H{"max": maxSettingValue})
		return
	}

	setting := models.Setting{Key: key, Value: req.Value, IsPublic: req.IsPublic}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "is_public", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		utils.RespondError(c, "Failed to save setting", err)
		return
	}

	utils.LogInfo("Setting %s saved (public=%v)", key, req.IsPublic)
	utils.Success(c, "Setting saved successfully", setting)
}

// DeleteSetting removes the setting at key
func DeleteSetting(c *gin.Context) {
	utils.LogInfo("DeleteSetting called")
	key, ok := settingKey(c)
	if !ok {
		return
	}

	res := config.DB.Where("key = ?", key).Delete(&models.Setting{})
	if res.Error != nil {
		utils.RespondError(c, "Failed to delete setting", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "Setting not found")
		return
	}
	utils.LogInfo("Setting %s deleted", key)
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}

// PublicSettings returns the public settings as a key to value map
func PublicSettings(c *gin.Context) {
	utils.LogInfo("PublicSettings called")

	var settings []models.Setting
	if err := config.DB.Where("is_public = ?", true).Find(&settings).Error; err != nil {
		utils.RespondError(c, "Failed to fetch settings", err)
		return
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	utils.Success(c, "Settings retrieved successfully", out)
}
