package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/stretchr/testify/assert"
)

func TestHealthWithoutDatabase(t *testing.T) {
	prev := config.DB
	config.DB = nil
	t.Cleanup(func() { config.DB = prev })

	r := testRouter(testCustomer())
	r.GET("/health", Health)

	resp := utils.MakeTestRequest(t, r, utils.TestRequest{Method: http.MethodGet, Path: "/health"})
	utils.AssertResponse(t, resp, http.StatusServiceUnavailable, "Service unavailable")
}

func TestMetricsReportsAndResets(t *testing.T) {
	utils.RequestLatency.Reset()
	utils.RequestLatency.Record(20 * time.Millisecond)
	utils.RequestLatency.Record(40 * time.Millisecond)

	r := testRouter(testCustomer())
	r.GET("/admin/metrics", Metrics)

	resp := utils.MakeTestRequest(t, r, utils.TestRequest{Method: http.MethodGet, Path: "/admin/metrics?reset=true"})
	utils.AssertResponse(t, resp, http.StatusOK, "Metrics retrieved successfully")
	latency := resp.Body["data"].(map[string]interface{})["request_latency_ms"].(map[string]interface{})
	assert.Equal(t, float64(2), latency["count"])

	assert.Zero(t, utils.RequestLatency.Snapshot().Count)
}
