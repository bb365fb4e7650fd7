package controllers

import (
	"net/http"
	"testing"

	"github.com/Govind-619/ShopSphere/utils"
	"github.com/stretchr/testify/assert"
)

func TestUserOrder(t *testing.T) {
	tests := []struct {
		sortBy, order string
		want          string
		ok            bool
	}{
		{"created_at", "desc", "created_at DESC", true},
		{"name", "ASC", "name ASC", true},
		{"last_login", "asc", "last_login_at ASC", true},
		{"password", "asc", "", false},
		{"email", "sideways", "", false},
	}
	for _, tt := range tests {
		got, ok := userOrder(tt.sortBy, tt.order)
		assert.Equal(t, tt.ok, ok, tt.sortBy)
		assert.Equal(t, tt.want, got, tt.sortBy)
	}
}

func TestGetUsersRejectsUnknownSort(t *testing.T) {
	r := testRouter(testCustomer())
	r.GET("/admin/users", GetUsers)

	resp := utils.MakeTestRequest(t, r, utils.TestRequest{Method: http.MethodGet, Path: "/admin/users?sort_by=password"})
	utils.AssertResponse(t, resp, http.StatusBadRequest, "Invalid sort parameters")
}
