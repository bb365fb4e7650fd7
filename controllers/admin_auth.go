package controllers

import (
	"errors"
	"fmt"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"gorm.io/gorm"
)

// SeedAdmin provisions the single administrator account from configuration.
// It does nothing when ADMIN_EMAIL is unset or an administrator already exists.
func SeedAdmin(cfg *config.Config) error {
	utils.LogInfo("SeedAdmin called")

	if cfg.AdminEmail == "" {
		utils.LogInfo("ADMIN_EMAIL not set, skipping admin provisioning")
		return nil
	}

	var existing models.User
	err := config.DB.Where("role = ?", models.RoleAdmin).First(&existing).Error
	if err == nil {
		if existing.Email != models.NormalizeEmail(cfg.AdminEmail) {
			utils.LogInfo("Administrator %s already exists, ignoring ADMIN_EMAIL %s", existing.Email, cfg.AdminEmail)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up administrator: %v", err)
	}

	if _, err := utils.GetUserByEmail(cfg.AdminEmail); err == nil {
		return fmt.Errorf("ADMIN_EMAIL %s already belongs to a customer account", cfg.AdminEmail)
	}
	if cfg.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD must be set to provision the administrator")
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		utils.LogError("Failed to hash admin password: %v", err)
		return err
	}

	admin := models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		// another instance won the race on the single-admin index
		if errors.Is(utils.ClassifyDBError(err), utils.ErrDuplicate) {
			utils.LogInfo("Administrator provisioned concurrently")
			return nil
		}
		utils.LogError("Failed to create administrator: %v", err)
		return err
	}

	utils.LogInfo("Administrator provisioned: %s", admin.Email)
	return nil
}
