package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyProviderPayload = errors.New("provider payload cannot be empty")

// InstallmentPaymentRequest is the body of the pay-installment route.
//
// provider_payload is forwarded as raw JSON so varying Mercado Pago schemas
// pass through untouched. A body without the envelope is taken as the payload
// itself; mp_payload is accepted as an older name for the envelope.
type InstallmentPaymentRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
	MPPayload       json.RawMessage `json:"mp_payload"`
}

// ParseProviderPayload extracts the provider request from a raw body. An empty
// body yields "{}".
func ParseProviderPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, key := range []string{"provider_payload", "mp_payload"} {
			wrapped, ok := envelope[key]
			if !ok {
				continue
			}
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, ErrEmptyProviderPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
