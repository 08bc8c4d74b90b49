package entities

import "time"

// InvoiceStatus follows the installments: open until the first one is paid,
// partially_paid in between, paid once every installment is settled.
type InvoiceStatus string

const (
	InvoiceStatusOpen          InvoiceStatus = "open"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
)

type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pending"
	InstallmentStatusPaid    InstallmentStatus = "paid"
)

// PlanInterval is the spacing between installment due dates.
type PlanInterval string

const (
	PlanIntervalWeekly      PlanInterval = "weekly"
	PlanIntervalFortnightly PlanInterval = "fortnightly"
	PlanIntervalMonthly     PlanInterval = "monthly"
)

func (i PlanInterval) Valid() bool {
	switch i {
	case PlanIntervalWeekly, PlanIntervalFortnightly, PlanIntervalMonthly:
		return true
	}
	return false
}

type Installment struct {
	Number    int               `json:"number"`
	DueDate   time.Time         `json:"due_date"`
	Amount    float64           `json:"amount"`
	Status    InstallmentStatus `json:"status"`
	PaidAt    *time.Time        `json:"paid_at,omitempty"`
	PaymentID string            `json:"payment_id,omitempty"`
}

// Invoice is the bill for one work order.
//
// Storage model (DynamoDB):
//   - PK: id (same value as work_order_id, one invoice per job)
//
// Monetary representation:
//   - Subtotal is ex-GST, GST is 10% of it, Total = Subtotal + GST.
//   - Installment amounts always sum to Total.
type Invoice struct {
	ID           string        `json:"id"`
	WorkOrderID  string        `json:"work_order_id"`
	Subtotal     float64       `json:"subtotal"`
	GST          float64       `json:"gst"`
	Total        float64       `json:"total"`
	GSTFree      bool          `json:"gst_free"`
	Status       InvoiceStatus `json:"status"`
	Installments []Installment `json:"installments"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Installment returns the 1-based installment n.
func (i Invoice) Installment(n int) (Installment, bool) {
	for _, in := range i.Installments {
		if in.Number == n {
			return in, true
		}
	}
	return Installment{}, false
}

// GSTSummary is the BAS figure set for a period.
type GSTSummary struct {
	From            time.Time `json:"from"`
	To              time.Time `json:"to"`
	InvoiceCount    int       `json:"invoice_count"`
	TotalSales      float64   `json:"total_sales"`
	GSTCollected    float64   `json:"gst_collected"`
	GSTFreeSubtotal float64   `json:"gst_free_subtotal"`
}
