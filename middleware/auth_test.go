package middleware

import (
	"net/http"
	"testing"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T, users ...models.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := *config.Current()
	cfg.JWTSecret = "middleware-secret"
	prevApp := config.App
	config.App = &cfg

	prevLoad := LoadUser
	LoadUser = func(id uint) (*models.User, error) {
		for i := range users {
			if users[i].ID == id {
				u := users[i]
				return &u, nil
			}
		}
		return nil, gorm.ErrRecordNotFound
	}
	t.Cleanup(func() {
		LoadUser = prevLoad
		config.App = prevApp
	})

	r := gin.New()
	ok := func(c *gin.Context) {
		user := c.MustGet("user").(models.User)
		utils.Success(c, "ok", gin.H{"id": user.ID})
	}
	r.GET("/me", AuthMiddleware(), ok)
	r.GET("/admin", AuthMiddleware(), AdminMiddleware(), ok)
	r.GET("/customer", AuthMiddleware(), CustomerMiddleware(), ok)
	return r
}

func user(id uint, role string, blocked bool) models.User {
	return models.User{Model: gorm.Model{ID: id}, Email: "u@example.com", Role: role, IsBlocked: blocked}
}

func TestAuthMiddleware(t *testing.T) {
	customer := user(1, models.RoleCustomer, false)
	blocked := user(2, models.RoleCustomer, true)
	r := setup(t, customer, blocked)

	tests := []struct {
		name    string
		headers map[string]string
		status  int
	}{
		{"missing header", nil, http.StatusUnauthorized},
		{"not bearer", map[string]string{"Authorization": "Token abc"}, http.StatusUnauthorized},
		{"garbage token", utils.BearerHeader("abc.def.ghi"), http.StatusUnauthorized},
		{"valid", utils.BearerHeader(utils.GetTestToken(t, &customer)), http.StatusOK},
		{"blocked", utils.BearerHeader(utils.GetTestToken(t, &blocked)), http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := utils.MakeTestRequest(t, r, utils.TestRequest{Method: http.MethodGet, Path: "/me", Headers: tt.headers})
			utils.AssertResponse(t, resp, tt.status, "")
		})
	}
}

func TestAuthMiddlewareUnknownUser(t *testing.T) {
	r := setup(t)
	ghost := user(99, models.RoleCustomer, false)
	resp := utils.MakeTestRequest(t, r, utils.TestRequest{
		Method:  http.MethodGet,
		Path:    "/me",
		Headers: utils.BearerHeader(utils.GetTestToken(t, &ghost)),
	})
	utils.AssertResponse(t, resp, http.StatusUnauthorized, utils.MsgInvalidToken)
}

func TestRoleMiddleware(t *testing.T) {
	admin := user(1, models.RoleAdmin, false)
	customer := user(2, models.RoleCustomer, false)
	r := setup(t, admin, customer)
	adminToken := utils.BearerHeader(utils.GetTestToken(t, &admin))
	customerToken := utils.BearerHeader(utils.GetTestToken(t, &customer))

	resp := utils.MakeTestRequest(t, r, utils.TestRequest{Method: http.MethodGet, Path: "/admin", Headers: adminToken})
	utils.AssertResponse(t, resp, http.StatusOK, "")

	resp = utils.MakeTestRequest(t, r, utils.TestRequest{Method: http.MethodGet, Path: "/admin", Headers: customerToken})
	utils.AssertResponse(t, resp, http.StatusForbidden, utils.MsgAdminOnly)

	resp = utils.MakeTestRequest(t, r, utils.TestRequest{Method: http.MethodGet, Path: "/customer", Headers: customerToken})
	utils.AssertResponse(t, resp, http.StatusOK, "")

	resp = utils.MakeTestRequest(t, r, utils.TestRequest{Method: http.MethodGet, Path: "/customer", Headers: adminToken})
	utils.AssertResponse(t, resp, http.StatusForbidden, utils.MsgCustomerOnly)
}

func TestResetTokenRejectedAsSession(t *testing.T) {
	customer := user(1, models.RoleCustomer, false)
	customer.Password = "hash"
	r := setup(t, customer)

	token, err := utils.GenerateResetToken(&customer)
	require.NoError(t, err)
	resp := utils.MakeTestRequest(t, r, utils.TestRequest{Method: http.MethodGet, Path: "/me", Headers: utils.BearerHeader(token)})
	utils.AssertResponse(t, resp, http.StatusUnauthorized, "")
}
