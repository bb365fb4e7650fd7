package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/Govind-619/ShopSphere/config"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Add records a failed field
func (e *FieldValidationErrors) Add(field, message string) {
	*e = append(*e, FieldValidationError{Field: field, Message: message})
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	nameRegex  = regexp.MustCompile(`^[\p{L} .'-]+$`)
	tagRegex   = regexp.MustCompile(`<[^>]*>`)
)

// SanitizeString trims input and strips HTML tags
func SanitizeString(input string) string {
	return strings.TrimSpace(tagRegex.ReplaceAllString(html.UnescapeString(input), ""))
}

// ValidateEmail checks if the email is well formed
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidateName checks a person's display name
func ValidateName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return false, "Name must be at least 2 characters long"
	}
	if len(name) > 50 {
		return false, "Name must not exceed 50 characters"
	}
	if !nameRegex.MatchString(name) {
		return false, "Name cannot contain numbers or special characters"
	}
	return true, ""
}

// ValidatePhone checks an optional phone number
func ValidatePhone(phone string) (bool, string) {
	if phone == "" {
		return true, ""
	}
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phoneRegex.MatchString(cleaned) {
		return false, "Invalid phone number format"
	}
	return true, ""
}

// ValidatePassword checks a password against the configured policy
func ValidatePassword(password string) (bool, string) {
	return ValidatePasswordWithPolicy(password, config.Current().Tunables.PasswordPolicy)
}

// ValidatePasswordWithPolicy checks a password against an explicit policy
func ValidatePasswordWithPolicy(password string, policy config.PasswordPolicy) (bool, string) {
	if len(password) < policy.MinLength {
		return false, fmt.Sprintf("Password must be at least %d characters long", policy.MinLength)
	}
	if len(password) > 72 {
		return false, "Password must not exceed 72 characters"
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if policy.RequireLower && !hasLower {
		return false, "Password must contain at least one lowercase letter"
	}
	if policy.RequireUpper && !hasUpper {
		return false, "Password must contain at least one uppercase letter"
	}
	if policy.RequireDigit && !hasDigit {
		return false, "Password must contain at least one number"
	}
	if policy.RequireSpecial && !hasSpecial {
		return false, "Password must contain at least one special character"
	}
	return true, ""
}

// ValidateDiscount checks a discount or coupon definition
func ValidateDiscount(discountType string, value, maxDiscount float64) error {
	switch discountType {
	case "percentage":
		if value <= 0 || value > 100 {
			return fmt.Errorf("percentage value must be between 0 and 100")
		}
	case "fixed":
		if value <= 0 {
			return fmt.Errorf("fixed value must be greater than 0")
		}
	default:
		return fmt.Errorf("discount type must be percentage or fixed")
	}
	if maxDiscount < 0 {
		return fmt.Errorf("max discount cannot be negative")
	}
	return nil
}
