package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/Govind-619/ShopSphere/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnalyticsWorkbook(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, -2)
	series := &utils.SalesSeries{
		Period:      "7d",
		Granularity: utils.GranularityDay,
		Start:       start,
		End:         now,
		Points: []utils.SalesPoint{
			{Label: "2026-10-14", Revenue: 120, Orders: 2},
			{Label: "2026-10-15", Revenue: 0, Orders: 0},
			{Label: "2026-10-16", Revenue: 80, Orders: 1},
		},
		Revenue: 200,
		Orders:  3,
	}
	summary := &utils.RevenueSummary{TotalRevenue: 1000, TotalOrders: 10, AverageOrderValue: 100}
	top := []utils.TopProduct{{ProductID: 3, Title: "Desk Lamp", QuantitySold: 7, Revenue: 700}}

	file, err := buildAnalyticsWorkbook(summary, series, top, now)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 3)
	assert.Equal(t, "Summary", file.Sheets[0].Name)
	assert.Equal(t, "Sales", file.Sheets[1].Name)
	assert.Equal(t, "Top Products", file.Sheets[2].Name)

	sales := file.Sheet["Sales"]
	require.Len(t, sales.Rows, 4)
	assert.Equal(t, "Period (day)", sales.Rows[0].Cells[0].Value)
	assert.Equal(t, "2026-10-15", sales.Rows[2].Cells[0].Value)

	products := file.Sheet["Top Products"]
	require.Len(t, products.Rows, 2)
	assert.Equal(t, "Desk Lamp", products.Rows[1].Cells[1].Value)
}

func TestTopProductsLimitValidation(t *testing.T) {
	r := testRouter(testCustomer())
	r.GET("/admin/analytics/top-products", GetTopProducts)

	for _, q := range []string{"0", "abc", "51"} {
		resp := utils.MakeTestRequest(t, r, utils.TestRequest{Method: http.MethodGet, Path: "/admin/analytics/top-products?limit=" + q})
		utils.AssertResponse(t, resp, http.StatusBadRequest, "Invalid limit")
	}
}
