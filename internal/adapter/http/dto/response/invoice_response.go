package response

import (
	"time"

	"moto_workshop/internal/domain/entities"
)

type InstallmentResponse struct {
	Number    int        `json:"number"`
	DueDate   string     `json:"due_date"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	PaymentID string     `json:"payment_id,omitempty"`
}

type InvoiceResponse struct {
	ID           string                `json:"id"`
	WorkOrderID  string                `json:"work_order_id"`
	Subtotal     float64               `json:"subtotal"`
	GST          float64               `json:"gst"`
	Total        float64               `json:"total"`
	GSTFree      bool                  `json:"gst_free"`
	Status       string                `json:"status"`
	Installments []InstallmentResponse `json:"installments"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// FromInvoice renders due dates as calendar dates in loc.
func FromInvoice(inv entities.Invoice, loc *time.Location) InvoiceResponse {
	plan := make([]InstallmentResponse, 0, len(inv.Installments))
	for _, in := range inv.Installments {
		plan = append(plan, InstallmentResponse{
			Number:    in.Number,
			DueDate:   in.DueDate.In(loc).Format(dateLayout),
			Amount:    in.Amount,
			Status:    string(in.Status),
			PaidAt:    in.PaidAt,
			PaymentID: in.PaymentID,
		})
	}
	return InvoiceResponse{
		ID:           inv.ID,
		WorkOrderID:  inv.WorkOrderID,
		Subtotal:     inv.Subtotal,
		GST:          inv.GST,
		Total:        inv.Total,
		GSTFree:      inv.GSTFree,
		Status:       string(inv.Status),
		Installments: plan,
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}
}

type GSTSummaryResponse struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	InvoiceCount    int     `json:"invoice_count"`
	TotalSales      float64 `json:"total_sales"`
	GSTCollected    float64 `json:"gst_collected"`
	GSTFreeSubtotal float64 `json:"gst_free_subtotal"`
}

func FromGSTSummary(s entities.GSTSummary, loc *time.Location) GSTSummaryResponse {
	return GSTSummaryResponse{
		From:            s.From.In(loc).Format(dateLayout),
		To:              s.To.In(loc).Format(dateLayout),
		InvoiceCount:    s.InvoiceCount,
		TotalSales:      s.TotalSales,
		GSTCollected:    s.GSTCollected,
		GSTFreeSubtotal: s.GSTFreeSubtotal,
	}
}
