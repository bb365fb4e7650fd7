package controllers

import (
	"fmt"
	"time"

	"github.com/Govind-619/ShopSphere/config"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

func boldStyle() *xlsx.Style {
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	return style
}

func addHeaderRow(sheet *xlsx.Sheet, headers ...string) {
	row := sheet.AddRow()
	style := boldStyle()
	for _, h := range headers {
		cell := row.AddCell()
		cell.SetString(h)
		cell.SetStyle(style)
	}
}

// buildAnalyticsWorkbook lays out summary, series and top products on separate sheets
func buildAnalyticsWorkbook(summary *utils.RevenueSummary, series *utils.SalesSeries, top []utils.TopProduct, generated time.Time) (*xlsx.File, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Summary")
	if err != nil {
		return nil, err
	}
	title := sheet.AddRow().AddCell()
	title.SetString(utils.AppName + " - Sales Report")
	title.SetStyle(boldStyle())
	sheet.AddRow().AddCell().SetString("Generated: " + generated.Format("2006-01-02 15:04"))
	sheet.AddRow().AddCell().SetString(fmt.Sprintf("Period: %s (%s to %s)", series.Period, series.Start.Format("2006-01-02"), series.End.Format("2006-01-02")))
	sheet.AddRow()

	addHeaderRow(sheet, "Metric", "Value")
	metrics := []struct {
		name  string
		value float64
	}{
		{"Total Revenue", summary.TotalRevenue},
		{"Total Orders", float64(summary.TotalOrders)},
		{"Average Order Value", summary.AverageOrderValue},
		{"Weekly Revenue", summary.WeeklyRevenue},
		{"Weekly Trend %", summary.WeeklyTrend},
		{"Monthly Revenue", summary.MonthlyRevenue},
		{"Monthly Trend %", summary.MonthlyTrend},
		{"Period Revenue", series.Revenue},
		{"Period Orders", float64(series.Orders)},
	}
	for _, m := range metrics {
		row := sheet.AddRow()
		row.AddCell().SetString(m.name)
		row.AddCell().SetFloat(m.value)
	}

	sheet, err = file.AddSheet("Sales")
	if err != nil {
		return nil, err
	}
	addHeaderRow(sheet, "Period ("+string(series.Granularity)+")", "Orders", "Revenue")
	for _, p := range series.Points {
		row := sheet.AddRow()
		row.AddCell().SetString(p.Label)
		row.AddCell().SetInt(int(p.Orders))
		row.AddCell().SetFloat(p.Revenue)
	}

	sheet, err = file.AddSheet("Top Products")
	if err != nil {
		return nil, err
	}
	addHeaderRow(sheet, "Product ID", "Title", "Quantity Sold", "Revenue")
	for _, p := range top {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ProductID))
		row.AddCell().SetString(p.Title)
		row.AddCell().SetInt(int(p.QuantitySold))
		row.AddCell().SetFloat(p.Revenue)
	}

	return file, nil
}

// ExportSalesReport downloads the analytics for ?period as an Excel workbook
func ExportSalesReport(c *gin.Context) {
	utils.LogInfo("ExportSalesReport called")
	period := c.DefaultQuery("period", "30d")
	limit, ok := topProductsLimit(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	now := time.Now()
	series, err := utils.GetSalesSeries(ctx, config.DB, period, now)
	if err != nil {
		utils.RespondError(c, "Failed to compute sales series", err)
		return
	}
	summary, err := utils.GetRevenueSummary(ctx, config.DB, now)
	if err != nil {
		utils.RespondError(c, "Failed to compute revenue summary", err)
		return
	}
	top, err := utils.GetTopProducts(ctx, config.DB, limit)
	if err != nil {
		utils.RespondError(c, "Failed to compute top products", err)
		return
	}

	file, err := buildAnalyticsWorkbook(summary, series, top, now)
	if err != nil {
		utils.LogError("Failed to build workbook: %v", err)
		utils.InternalServerError(c, "Failed to build report", nil)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales_report_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		return
	}
	utils.LogInfo("Sales report exported for period %s", period)
}
