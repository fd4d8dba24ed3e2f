package receipt

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/utils"
)

// RenderPDF builds a downloadable A4 receipt for a persisted order.
func RenderPDF(order models.Order) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 24, "Feliz Handmade Studio")
	pdf.Ln(30)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 16, fmt.Sprintf("Receipt for order %s", order.OrderCode))
	pdf.Ln(16)
	pdf.Cell(0, 16, fmt.Sprintf("Placed: %s", order.CreatedAt.Format("2 Jan 2006 15:04")))
	pdf.Ln(16)
	pdf.Cell(0, 16, fmt.Sprintf("Status: %s", order.Status))
	pdf.Ln(28)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 16, "Deliver to")
	pdf.Ln(16)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 16, order.CustomerName)
	pdf.Ln(14)
	pdf.Cell(0, 16, order.CustomerPhone)
	pdf.Ln(14)
	pdf.MultiCell(0, 14, order.CustomerAddress, "", "L", false)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(280, 18, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(50, 18, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(100, 18, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(100, 18, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.OrderItems {
		pdf.CellFormat(280, 16, item.ProductName, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 16, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(100, 16, utils.FormatMMK(item.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(100, 16, utils.FormatMMK(item.Price*int64(item.Quantity)), "", 1, "R", false, 0, "")
		if item.Meta != "" {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(530, 12, item.Meta, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
		}
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(430, 20, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(100, 20, utils.FormatMMK(order.Total), "T", 1, "R", false, 0, "")

	pdf.Ln(20)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 14, "Payment by bank transfer. Customized orders typically take ~2 weeks.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
