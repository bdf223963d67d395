package invoice

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"tulynx-storefront/internal/domain"
)

// Render produces a PDF invoice for the order.
func Render(order domain.Order) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", order.OrderID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "Tulynx", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Invoice", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Order: %s", order.OrderID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 2, 2006")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", order.Status), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s %s", order.Customer.FirstName, order.Customer.LastName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, order.Customer.Email, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, order.Shipping.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("%s, %s %s", order.Shipping.City, order.Shipping.State, order.Shipping.ZipCode), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, order.Shipping.Country, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range order.Lines {
		pdf.CellFormat(90, 8, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, formatCents(line.UnitPriceCents), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, formatCents(line.UnitPriceCents*int64(line.Quantity)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	totalsRow(pdf, "Subtotal", order.SubtotalCents, false)
	totalsRow(pdf, "Tax", order.TaxCents, false)
	if order.DiscountCents > 0 {
		totalsRow(pdf, "Discount", -order.DiscountCents, false)
	}
	totalsRow(pdf, fmt.Sprintf("Delivery (%s)", order.Delivery.Method), order.Delivery.FeeCents, false)
	if order.Payment.ProcessingFeeCents > 0 {
		totalsRow(pdf, "Processing fee", order.Payment.ProcessingFeeCents, false)
	}
	totalsRow(pdf, "Total", order.TotalCents, true)

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Thank you for shopping with Tulynx.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return buf.Bytes(), nil
}

func totalsRow(pdf *fpdf.Fpdf, label string, cents int64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(150, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, formatCents(cents), "", 1, "R", false, 0, "")
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
