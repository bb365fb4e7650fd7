package controllers

import (
	"net/http"
	"testing"

	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSignupRequestValidate(t *testing.T) {
	tests := []struct {
		name  string
		req   SignupRequest
		valid bool
	}{
		{"valid", SignupRequest{Name: "Asha Rao", Email: " Asha@Example.com ", Password: "Secret123"}, true},
		{"short name", SignupRequest{Name: "A", Email: "a@example.com", Password: "Secret123"}, false},
		{"bad email", SignupRequest{Name: "Asha", Email: "not-an-email", Password: "Secret123"}, false},
		{"bad phone", SignupRequest{Name: "Asha", Email: "a@example.com", Password: "Secret123", Phone: "12ab"}, false},
		{"weak password", SignupRequest{Name: "Asha", Email: "a@example.com", Password: "secret"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := tt.req.validate()
			assert.Equal(t, tt.valid, valid, msg)
		})
	}

	req := SignupRequest{Name: " <i>Asha</i> ", Email: " Asha@Example.com ", Password: "Secret123"}
	valid, _ := req.validate()
	assert.True(t, valid)
	assert.Equal(t, "Asha", req.Name)
	assert.Equal(t, "asha@example.com", req.Email)
}

func authRouter() *gin.Engine {
	r := testRouter(testCustomer())
	r.POST("/auth/signup", Signup)
	r.POST("/auth/login", Login)
	r.POST("/auth/forgot-password", ForgotPassword)
	r.POST("/auth/reset-password", ResetPassword)
	r.PUT("/customer/password", ChangePassword)
	return r
}

func TestAuthHandlersRejectBadInput(t *testing.T) {
	r := authRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
		msg    string
	}{
		{"signup missing fields", http.MethodPost, "/auth/signup", map[string]string{"email": "a@example.com"}, http.StatusBadRequest, utils.MsgInvalidRequest},
		{"signup weak password", http.MethodPost, "/auth/signup", map[string]string{"name": "Asha", "email": "a@example.com", "password": "short"}, http.StatusBadRequest, "Validation failed"},
		{"login bad email", http.MethodPost, "/auth/login", map[string]string{"email": "nope", "password": "x"}, http.StatusBadRequest, "Invalid email"},
		{"forgot bad email", http.MethodPost, "/auth/forgot-password", map[string]string{"email": "nope"}, http.StatusBadRequest, "Invalid email"},
		{
			"reset mismatch", http.MethodPost, "/auth/reset-password",
			map[string]string{"reset_token": "t", "new_password": "Secret123", "confirm_password": "Secret124"},
			http.StatusBadRequest, "Passwords do not match",
		},
		{
			"reset weak", http.MethodPost, "/auth/reset-password",
			map[string]string{"reset_token": "t", "new_password": "weak", "confirm_password": "weak"},
			http.StatusBadRequest, "Invalid password",
		},
		{
			"reset garbage token", http.MethodPost, "/auth/reset-password",
			map[string]string{"reset_token": "garbage", "new_password": "Secret123", "confirm_password": "Secret123"},
			http.StatusUnauthorized, "Invalid or expired reset token",
		},
		{
			"change to same password", http.MethodPut, "/customer/password",
			map[string]string{"current_password": "Secret123", "new_password": "Secret123", "confirm_password": "Secret123"},
			http.StatusBadRequest, "New password must be different from the current password",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := utils.MakeTestRequest(t, r, utils.TestRequest{Method: tt.method, Path: tt.path, Body: tt.body})
			utils.AssertResponse(t, resp, tt.status, tt.msg)
		})
	}
}
