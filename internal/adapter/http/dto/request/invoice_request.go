package request

import "time"

// CreateInvoiceRequest bills a work order. FirstDue is YYYY-MM-DD in the
// workshop location; empty means today.
type CreateInvoiceRequest struct {
	WorkOrderID  string  `json:"work_order_id" binding:"required"`
	Subtotal     float64 `json:"subtotal" binding:"required"`
	GSTFree      bool    `json:"gst_free"`
	Installments int     `json:"installments"`
	Interval     string  `json:"interval"`
	FirstDue     string  `json:"first_due"`
}

func (r CreateInvoiceRequest) ResolveFirstDue(loc *time.Location) (time.Time, error) {
	return ParseDate(r.FirstDue, loc)
}
