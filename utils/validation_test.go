package utils

import (
	"testing"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordWithPolicy(t *testing.T) {
	strict := config.PasswordPolicy{MinLength: 8, RequireUpper: true, RequireLower: true, RequireDigit: true, RequireSpecial: true}
	lenient := config.PasswordPolicy{MinLength: 6}

	tests := []struct {
		name     string
		password string
		policy   config.PasswordPolicy
		valid    bool
	}{
		{"strict ok", "Secret1!", strict, true},
		{"too short", "Se1!", strict, false},
		{"missing upper", "secret1!", strict, false},
		{"missing lower", "SECRET1!", strict, false},
		{"missing digit", "Secrets!", strict, false},
		{"missing special", "Secret12", strict, false},
		{"lenient ok", "abcdef", lenient, true},
		{"lenient short", "abc", lenient, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidatePasswordWithPolicy(tt.password, tt.policy)
			assert.Equal(t, tt.valid, valid, msg)
			if !tt.valid {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	valid, _ := ValidateEmail("ann@example.com")
	assert.True(t, valid)
	valid, _ = ValidateEmail("ann@example")
	assert.False(t, valid)
	valid, _ = ValidateEmail("not an email")
	assert.False(t, valid)
}

func TestValidateName(t *testing.T) {
	valid, _ := ValidateName("Anne-Marie O'Neil")
	assert.True(t, valid)
	valid, _ = ValidateName("A")
	assert.False(t, valid)
	valid, _ = ValidateName("R2D2")
	assert.False(t, valid)
}

func TestValidatePhone(t *testing.T) {
	valid, _ := ValidatePhone("")
	assert.True(t, valid)
	valid, _ = ValidatePhone("+91 98765-43210")
	assert.True(t, valid)
	valid, _ = ValidatePhone("12ab")
	assert.False(t, valid)
}

func TestValidateDiscount(t *testing.T) {
	assert.NoError(t, ValidateDiscount("percentage", 10, 15))
	assert.NoError(t, ValidateDiscount("fixed", 50, 0))
	assert.Error(t, ValidateDiscount("percentage", 120, 0))
	assert.Error(t, ValidateDiscount("fixed", 0, 0))
	assert.Error(t, ValidateDiscount("bogus", 10, 0))
	assert.Error(t, ValidateDiscount("fixed", 10, -1))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  <b>hello</b> "))
}
