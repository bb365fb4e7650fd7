package controllers

import (
	"errors"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SignupRequest represents the signup request body
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// validate checks the request fields and returns the first problem found
func (r *SignupRequest) validate() (bool, string) {
	r.Name = utils.SanitizeString(r.Name)
	r.Email = models.NormalizeEmail(r.Email)
	r.Phone = utils.SanitizeString(r.Phone)

	if valid, msg := utils.ValidateName(r.Name); !valid {
		return false, msg
	}
	if valid, msg := utils.ValidateEmail(r.Email); !valid {
		return false, msg
	}
	if valid, msg := utils.ValidatePhone(r.Phone); !valid {
		return false, msg
	}
	return utils.ValidatePassword(r.Password)
}

// Signup registers a new customer account
func Signup(c *gin.Context) {
	utils.LogInfo("Signup called")

	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}
	if valid, msg := req.validate(); !valid {
		utils.LogError("Signup failed - validation: %s", msg)
		utils.BadRequest(c, "Validation failed", msg)
		return
	}

	if _, err := utils.GetUserByEmail(req.Email); err == nil {
		utils.LogError("Signup failed - email already registered: %s", req.Email)
		utils.BadRequest(c, "Email already registered", nil)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, "Failed to create account", err)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.InternalServerError(c, "Failed to create account", err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleCustomer,
		Profile:  models.Profile{Phone: req.Phone},
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(utils.ClassifyDBError(err), utils.ErrDuplicate) {
			utils.LogError("Signup failed - duplicate email on insert: %s", req.Email)
			utils.BadRequest(c, "Email already registered", nil)
			return
		}
		utils.RespondError(c, "Failed to create account", err)
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token", err)
		return
	}

	utils.LogInfo("Customer registered: %s", user.Email)
	utils.Created(c, utils.MsgRegisterSuccess, gin.H{
		"token": token,
		"user":  userResponse(user),
	})
}
