package config

import (
	"fmt"
	"log"

	"github.com/Govind-619/ShopSphere/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDatabase opens the Postgres connection and migrates the schema
func ConnectDatabase(cfg *Config) error {
	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}
	DB = db

	return Migrate(DB)
}

// Migrate creates or updates the schema on db
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Coupon{},
		&models.Cart{},
		&models.Wishlist{},
		&models.Order{},
		&models.OrderItem{},
		&models.Counter{},
		&models.Notification{},
		&models.Setting{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %v", err)
	}

	return ensureConstraints(db)
}

// ensureConstraints adds the indexes AutoMigrate cannot express
func ensureConstraints(db *gorm.DB) error {
	statements := []string{
		// At most one administrator account
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_single_admin ON users ((role)) WHERE role = 'admin' AND deleted_at IS NULL`,
		// Soft-deleted accounts release their email
		`DROP INDEX IF EXISTS idx_users_email`,
		`DROP INDEX IF EXISTS idx_users_email_lower`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_active ON users (LOWER(email)) WHERE deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_coupons_code_upper ON coupons (UPPER(code))`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			log.Printf("Failed to apply constraint %q: %v", stmt, err)
			return fmt.Errorf("failed to apply database constraints: %v", err)
		}
	}
	return nil
}
