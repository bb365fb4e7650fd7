package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Roles a principal can hold
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is the single identity record for customers and the administrator.
// Customer-only data lives in the embedded Profile.
type User struct {
	gorm.Model
	Name           string     `json:"name" gorm:"not null"`
	Email          string     `json:"email" gorm:"not null;index"`
	Password       string     `json:"-" gorm:"not null"`
	Role           string     `json:"role" gorm:"not null;default:'customer';index"`
	IsBlocked      bool       `json:"is_blocked" gorm:"default:false"`
	Profile        Profile    `json:"profile" gorm:"embedded;embeddedPrefix:profile_"`
	ResetOTP       string     `json:"-"`
	ResetOTPExpiry *time.Time `json:"-"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
}

// Profile carries the optional customer contact details
type Profile struct {
	Phone   string  `json:"phone"`
	Address Address `json:"address" gorm:"embedded;embeddedPrefix:address_"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// BeforeSave keeps emails normalized to match the lower(email) unique index
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	u.Name = strings.TrimSpace(u.Name)
	return nil
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
