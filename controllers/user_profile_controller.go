package controllers

import (
	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// UpdateProfileRequest holds the editable profile fields. Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name    *string         `json:"name"`
	Phone   *string         `json:"phone"`
	Address *models.Address `json:"address"`
}

// GetProfile returns the signed-in customer's profile
func GetProfile(c *gin.Context) {
	utils.LogInfo("GetProfile called")
	user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.Success(c, "Profile retrieved successfully", userResponse(user))
}

// UpdateProfile edits name, phone and default shipping address
func UpdateProfile(c *gin.Context) {
	utils.LogInfo("UpdateProfile called")
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := utils.SanitizeString(*req.Name)
		if valid, msg := utils.ValidateName(name); !valid {
			utils.BadRequest(c, "Invalid name", msg)
			return
		}
		updates["name"] = name
		user.Name = name
	}
	if req.Phone != nil {
		phone := utils.SanitizeString(*req.Phone)
		if valid, msg := utils.ValidatePhone(phone); !valid {
			utils.BadRequest(c, "Invalid phone", msg)
			return
		}
		updates["profile_phone"] = phone
		user.Profile.Phone = phone
	}
	if req.Address != nil {
		if errs := utils.ValidateAddress(*req.Address); len(errs) > 0 {
			utils.BadRequest(c, "Invalid address", errs)
			return
		}
		a := *req.Address
		updates["profile_address_line1"] = a.Line1
		updates["profile_address_line2"] = a.Line2
		updates["profile_address_city"] = a.City
		updates["profile_address_state"] = a.State
		updates["profile_address_postal_code"] = a.PostalCode
		updates["profile_address_country"] = a.Country
		user.Profile.Address = a
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "No fields to update", nil)
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		utils.RespondError(c, "Failed to update profile", err)
		return
	}

	utils.LogInfo("Profile updated for user %d", user.ID)
	utils.Success(c, "Profile updated successfully", userResponse(user))
}
