package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Govind-619/ShopSphere/models"
	"github.com/Govind-619/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// buildInvoicePDF renders an order as a one-page A4 invoice
func buildInvoicePDF(order *models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, utils.AppName)
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, fmt.Sprintf("Order: #%d", order.OrderNumber))
	pdf.Cell(80, 8, "Order Date: "+order.CreatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Payment: "+order.PaymentMethod)
	pdf.Cell(80, 8, "Status: "+order.Status)
	pdf.Ln(10)

	// Customer and shipping info
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, tr(order.Customer.Name))
	pdf.Ln(6)
	pdf.Cell(100, 8, order.Customer.Email)
	pdf.Ln(6)
	if order.Customer.Phone != "" {
		pdf.Cell(100, 8, "Phone: "+order.Customer.Phone)
		pdf.Ln(6)
	}
	pdf.MultiCell(0, 6, tr(order.Customer.Address.String()), "", "L", false)
	pdf.Ln(6)

	// Items table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(80, 8, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		pdf.CellFormat(80, 8, tr(item.Title), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.LineTotal), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Summary
	pdf.Ln(4)
	summaryRow(pdf, "Subtotal:", order.Subtotal, false)
	if order.Discount > 0 {
		label := "Discount:"
		if order.Coupon.Code != "" {
			label = fmt.Sprintf("Discount (%s):", order.Coupon.Code)
		}
		summaryRow(pdf, label, -order.Discount, false)
	}
	summaryRow(pdf, "Grand Total:", order.Total, true)

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for shopping with "+utils.AppName+"!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func summaryRow(pdf *gofpdf.Fpdf, label string, amount float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(130, 8, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", style, 12)
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", amount), "", 1, "R", false, 0, "")
}

// DownloadInvoice returns a PDF invoice for one of the customer's orders
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")
	user, ok := currentUser(c)
	if !ok {
		return
	}
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	order, err := utils.GetOrderByNumber(number, user.ID)
	if err != nil {
		utils.RespondError(c, "Order", err)
		return
	}

	data, err := buildInvoicePDF(order)
	if err != nil {
		utils.LogError("Failed to render invoice for order %d: %v", number, err)
		utils.InternalServerError(c, "Failed to generate invoice", nil)
		return
	}

	utils.LogInfo("Invoice generated for order %d", number)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%d.pdf", number))
	c.Data(http.StatusOK, "application/pdf", data)
}
