package models

import "strings"

// Product categories
const (
	CategoryElectronics = "electronics"
	CategoryFashion     = "fashion"
	CategoryHome        = "home"
	CategoryBeauty      = "beauty"
	CategorySports      = "sports"
	CategoryBooks       = "books"
	CategoryGrocery     = "grocery"
	CategoryToys        = "toys"
	CategoryOther       = "other"
)

// Categories lists every accepted category in display order
var Categories = []string{
	CategoryElectronics,
	CategoryFashion,
	CategoryHome,
	CategoryBeauty,
	CategorySports,
	CategoryBooks,
	CategoryGrocery,
	CategoryToys,
	CategoryOther,
}

// NormalizeCategory returns the canonical category name and whether it is known
func NormalizeCategory(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories {
		if c == name {
			return c, true
		}
	}
	return "", false
}
