package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress() models.Address {
	return models.Address{Line1: "12 MG Road", City: "Kochi", State: "Kerala", PostalCode: "682001", Country: "India"}
}

func TestCustomerSnapshot(t *testing.T) {
	user := testCustomer()
	user.Profile = models.Profile{Phone: "9876543210", Address: testAddress()}

	t.Run("profile defaults", func(t *testing.T) {
		snap, errs := customerSnapshot(user, PlaceOrderRequest{})
		assert.Empty(t, errs)
		assert.Equal(t, "Asha Rao", snap.Name)
		assert.Equal(t, "asha@example.com", snap.Email)
		assert.Equal(t, "9876543210", snap.Phone)
		assert.Equal(t, "Kochi", snap.Address.City)
	})

	t.Run("request overrides", func(t *testing.T) {
		addr := testAddress()
		addr.City = "Chennai"
		snap, errs := customerSnapshot(user, PlaceOrderRequest{Phone: "+919000000000", Address: &addr})
		assert.Empty(t, errs)
		assert.Equal(t, "+919000000000", snap.Phone)
		assert.Equal(t, "Chennai", snap.Address.City)
	})

	t.Run("no address anywhere", func(t *testing.T) {
		_, errs := customerSnapshot(testCustomer(), PlaceOrderRequest{})
		require.Len(t, errs, 1)
		assert.Equal(t, "address", errs[0].Field)
	})

	t.Run("invalid phone and address", func(t *testing.T) {
		_, errs := customerSnapshot(user, PlaceOrderRequest{Phone: "abc", Address: &models.Address{Line1: "1 Main St"}})
		fields := make([]string, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, e.Field)
		}
		assert.Contains(t, fields, "phone")
		assert.Contains(t, fields, "address.city")
		assert.Contains(t, fields, "address.postal_code")
		assert.Contains(t, fields, "address.country")
	})
}

func TestPlaceOrderRejectsBeforeTouchingStock(t *testing.T) {
	r := testRouter(testCustomer())
	r.POST("/customer/orders", PlaceOrder)

	resp := utils.MakeTestRequest(t, r, utils.TestRequest{
		Method: http.MethodPost,
		Path:   "/customer/orders",
		Body:   map[string]interface{}{"payment_method": "barter", "address": testAddress()},
	})
	utils.AssertResponse(t, resp, http.StatusBadRequest, "Invalid payment method")

	resp = utils.MakeTestRequest(t, r, utils.TestRequest{
		Method: http.MethodPost,
		Path:   "/customer/orders",
		Body:   map[string]interface{}{"payment_method": "cod"},
	})
	utils.AssertResponse(t, resp, http.StatusBadRequest, "Validation failed")
}

func TestPlaceOrderEmptyBodyFallsThrough(t *testing.T) {
	r := testRouter(testCustomer())
	r.POST("/customer/orders", PlaceOrder)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		// Without a profile address the request stops at snapshot validation,
		// which proves the empty body was accepted.
		{"chunked empty body", "", "Validation failed"},
		{"malformed body", "{", utils.MsgInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/customer/orders", strings.NewReader(tt.body))
			req.ContentLength = -1
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestPlaceOrderRequiresUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/customer/orders", PlaceOrder)

	resp := utils.MakeTestRequest(t, r, utils.TestRequest{Method: http.MethodPost, Path: "/customer/orders"})
	utils.AssertResponse(t, resp, http.StatusUnauthorized, utils.MsgUnauthorized)
}

func TestBuildInvoicePDF(t *testing.T) {
	order := &models.Order{
		OrderNumber:   1042,
		Subtotal:      300,
		Discount:      30,
		Total:         270,
		Coupon:        models.AppliedCoupon{Code: "SAVE10", Type: models.DiscountPercentage, Value: 10, Discount: 30},
		Status:        models.OrderStatusPending,
		PaymentMethod: models.PaymentMethodCOD,
		Customer:      models.CustomerSnapshot{Name: "José Núñez", Email: "jose@example.com", Address: testAddress()},
		CreatedAt:     time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{ProductID: 1, Title: "Desk Lamp", Price: 100, Quantity: 2, LineTotal: 200},
			{ProductID: 2, Title: "Notebook", Price: 50, Quantity: 2, LineTotal: 100},
		},
	}

	data, err := buildInvoicePDF(order)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
