package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// InvoicePayment records one attempt to settle an installment.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (invoice_id-index): invoice_id
//
// ProviderPayloadRaw keeps the provider response body for audit; ProviderPayload
// is the parsed form.
type InvoicePayment struct {
	ID                string        `json:"id"`
	InvoiceID         string        `json:"invoice_id"`
	InstallmentNumber int           `json:"installment_number"`
	Amount            float64       `json:"amount"`
	Date              time.Time     `json:"date"`
	Status            PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
