package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the card payment provider (Mercado Pago).
//
// The request payload is forwarded as-is after enrichment; the raw provider
// response is returned so it can be stored for audit.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
