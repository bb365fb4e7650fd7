package utils

import (
	"testing"

	"github.com/Govind-619/ShopSphere/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateAddress(t *testing.T) {
	valid := models.Address{Line1: "12 Baker St.", City: "London", PostalCode: "NW1 6XE", Country: "UK"}
	assert.Empty(t, ValidateAddress(valid))

	errs := ValidateAddress(models.Address{PostalCode: "12345", Country: "US"})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs.Error(), "address.line1")
	assert.Contains(t, errs.Error(), "address.city")

	bad := valid
	bad.City = "L0nd0n"
	bad.PostalCode = "!"
	errs = ValidateAddress(bad)
	assert.Len(t, errs, 2)
}
