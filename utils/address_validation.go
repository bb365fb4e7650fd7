package utils

import (
	"regexp"
	"strings"

	"github.com/Govind-619/ShopSphere/models"
)

var (
	addressLineRegex = regexp.MustCompile(`^[\p{L}0-9\s,.'#\-/]+$`)
	cityRegex        = regexp.MustCompile(`^[\p{L}\s.'-]+$`)
	postalCodeRegex  = regexp.MustCompile(`^[A-Za-z0-9\s-]{3,10}$`)
)

// ValidateAddress checks a shipping address. Line2 and State are optional.
func ValidateAddress(a models.Address) FieldValidationErrors {
	var errs FieldValidationErrors

	line1 := strings.TrimSpace(a.Line1)
	switch {
	case line1 == "":
		errs.Add("address.line1", "Address line 1 is required")
	case len(line1) > 150:
		errs.Add("address.line1", "Address line 1 must not exceed 150 characters")
	case !addressLineRegex.MatchString(line1):
		errs.Add("address.line1", "Address line 1 contains invalid characters")
	}

	if line2 := strings.TrimSpace(a.Line2); line2 != "" {
		if len(line2) > 100 {
			errs.Add("address.line2", "Address line 2 must not exceed 100 characters")
		} else if !addressLineRegex.MatchString(line2) {
			errs.Add("address.line2", "Address line 2 contains invalid characters")
		}
	}

	city := strings.TrimSpace(a.City)
	if city == "" {
		errs.Add("address.city", "City is required")
	} else if !cityRegex.MatchString(city) {
		errs.Add("address.city", "City must contain only letters")
	}

	postal := strings.TrimSpace(a.PostalCode)
	if postal == "" {
		errs.Add("address.postal_code", "Postal code is required")
	} else if !postalCodeRegex.MatchString(postal) {
		errs.Add("address.postal_code", "Invalid postal code")
	}

	if strings.TrimSpace(a.Country) == "" {
		errs.Add("address.country", "Country is required")
	}

	return errs
}
