package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"moto_workshop/internal/domain/entities"
)

// InvoicePDF prints the invoice header, the GST totals and the installment table.
func InvoicePDF(inv entities.Invoice, loc *time.Location) (*bytes.Buffer, string, error) {
	if loc == nil {
		loc = time.Local
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Tax invoice "+inv.ID, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Tax Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, "Invoice: "+inv.ID)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Work order: "+inv.WorkOrderID)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Issued: "+inv.CreatedAt.In(loc).Format("02/01/2006"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Status: "+string(inv.Status))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	totalsRow(pdf, "Subtotal (ex GST)", inv.Subtotal)
	gstLabel := "GST 10%"
	if inv.GSTFree {
		gstLabel = "GST (GST-free supply)"
	}
	totalsRow(pdf, gstLabel, inv.GST)
	totalsRow(pdf, "Total", inv.Total)
	pdf.Ln(8)

	if len(inv.Installments) > 0 {
		pdf.SetFont("Arial", "B", 11)
		for _, h := range []struct {
			w     float64
			label string
		}{{15, "#"}, {40, "Due"}, {35, "Amount"}, {30, "Status"}, {40, "Paid"}} {
			pdf.CellFormat(h.w, 7, h.label, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 10)
		for _, in := range inv.Installments {
			paid := ""
			if in.PaidAt != nil {
				paid = in.PaidAt.In(loc).Format("02/01/2006")
			}
			pdf.CellFormat(15, 7, fmt.Sprintf("%d", in.Number), "1", 0, "C", false, 0, "")
			pdf.CellFormat(40, 7, in.DueDate.In(loc).Format("02/01/2006"), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 7, money(in.Amount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 7, string(in.Status), "1", 0, "C", false, 0, "")
			pdf.CellFormat(40, 7, paid, "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf, fmt.Sprintf("invoice_%s.pdf", inv.ID), nil
}

func totalsRow(pdf *fpdf.Fpdf, label string, amount float64) {
	pdf.CellFormat(80, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, money(amount), "", 1, "R", false, 0, "")
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
