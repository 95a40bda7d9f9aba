// Package report renders printable documents for completed work.
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"fieldserve/internal/application/ticket/usecases"
)

type WorkOrderPDFRenderer struct{}

func NewWorkOrderPDFRenderer() *WorkOrderPDFRenderer {
	return &WorkOrderPDFRenderer{}
}

func (r *WorkOrderPDFRenderer) Render(data usecases.WorkOrderData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Work Order %s", data.TicketNumber), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Work Order %s", data.TicketNumber))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	r.field(pdf, "Title", data.Title)
	r.field(pdf, "Priority", data.Priority)
	r.field(pdf, "Technician", fmt.Sprintf("#%d", data.TechnicianID))
	if data.ResolvedAt != nil {
		r.field(pdf, "Resolved", data.ResolvedAt.Format("2006-01-02 15:04 MST"))
	}
	r.field(pdf, "Time spent", fmt.Sprintf("%d min", data.MinutesSpent))
	pdf.Ln(4)

	r.section(pdf, "Work performed", data.WorkPerformed)
	if len(data.RootCause) > 0 {
		r.section(pdf, "Root cause", data.RootCause)
	}
	if len(data.Resolution) > 0 {
		r.section(pdf, "Resolution", data.Resolution)
	}

	if len(data.Parts) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Parts used")
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 7, "Item", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, "Quantity", "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, "Unit cost", "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, "Line total", "1", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, part := range data.Parts {
			pdf.CellFormat(40, 7, fmt.Sprintf("#%d", part.ItemID), "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("%d", part.Quantity), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", part.UnitCost), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", float64(part.Quantity)*part.UnitCost), "1", 1, "R", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(105, 7, "Total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", data.TotalCost), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render work order pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *WorkOrderPDFRenderer) field(pdf *gofpdf.Fpdf, name, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(35, 7, name)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, value)
	pdf.Ln(7)
}

func (r *WorkOrderPDFRenderer) section(pdf *gofpdf.Fpdf, title, body string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, body, "", "L", false)
	pdf.Ln(3)
}
