package models

import "strings"

// Address is a postal address embedded in user profiles and order snapshots
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// IsZero reports whether no address field is filled in
func (a Address) IsZero() bool {
	return strings.TrimSpace(a.Line1+a.Line2+a.City+a.State+a.PostalCode+a.Country) == ""
}

// String renders the address on one line
func (a Address) String() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
