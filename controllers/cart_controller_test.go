package controllers

import (
	"net/http"
	"testing"

	"github.com/Govind-619/ShopSphere/utils"
	"github.com/stretchr/testify/assert"
)

func TestValidateCartQuantity(t *testing.T) {
	assert.NoError(t, validateCartQuantity(1))
	assert.NoError(t, validateCartQuantity(MaxCartQuantity))
	assert.EqualError(t, validateCartQuantity(0), "quantity must be at least 1")
	assert.EqualError(t, validateCartQuantity(MaxCartQuantity+1), "quantity cannot exceed 99")
}

func TestCartHandlersValidateInput(t *testing.T) {
	r := testRouter(testCustomer())
	r.POST("/customer/cart", AddToCart)
	r.PUT("/customer/cart/:id", UpdateCartItem)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		msg    string
	}{
		{"missing product", http.MethodPost, "/customer/cart", map[string]int{"quantity": 1}, utils.MsgInvalidRequest},
		{"negative quantity", http.MethodPost, "/customer/cart", map[string]int{"product_id": 1, "quantity": -2}, "quantity must be at least 1"},
		{"too many", http.MethodPost, "/customer/cart", map[string]int{"product_id": 1, "quantity": 500}, "quantity cannot exceed 99"},
		{"bad id", http.MethodPut, "/customer/cart/x", map[string]int{"quantity": 1}, utils.MsgInvalidID},
		{"zero update", http.MethodPut, "/customer/cart/3", map[string]int{"quantity": 0}, utils.MsgInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := utils.MakeTestRequest(t, r, utils.TestRequest{Method: tt.method, Path: tt.path, Body: tt.body})
			utils.AssertResponse(t, resp, http.StatusBadRequest, tt.msg)
		})
	}
}
