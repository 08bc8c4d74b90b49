package response

import (
	"time"

	"moto_workshop/internal/domain/entities"
)

type InvoicePaymentResponse struct {
	PaymentID         string    `json:"payment_id"`
	InvoiceID         string    `json:"invoice_id"`
	InstallmentNumber int       `json:"installment_number"`
	Amount            float64   `json:"amount"`
	Date              time.Time `json:"date"`
	Status            string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromInvoicePayment(p entities.InvoicePayment) InvoicePaymentResponse {
	return InvoicePaymentResponse{
		PaymentID:          p.ID,
		InvoiceID:          p.InvoiceID,
		InstallmentNumber:  p.InstallmentNumber,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromInvoicePayments(ps []entities.InvoicePayment) []InvoicePaymentResponse {
	out := make([]InvoicePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromInvoicePayment(p))
	}
	return out
}
