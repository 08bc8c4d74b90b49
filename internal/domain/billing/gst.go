// Package billing holds the money arithmetic for workshop invoices. All
// amounts are handled as integer cents internally and exposed as dollars.
package billing

import (
	"errors"
	"math"
)

// GSTRate is the Australian goods and services tax rate.
const GSTRate = 0.10

var ErrNegativeAmount = errors.New("amount must not be negative")

// ToCents rounds half away from zero to the nearest cent.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// Totals is an invoice's ex-GST subtotal, GST component and total.
type Totals struct {
	Subtotal float64
	GST      float64
	Total    float64
}

// ComputeTotals applies GST to an ex-GST subtotal. GST-free supplies carry no GST.
func ComputeTotals(subtotal float64, gstFree bool) (Totals, error) {
	if subtotal < 0 || math.IsNaN(subtotal) || math.IsInf(subtotal, 0) {
		return Totals{}, ErrNegativeAmount
	}
	sub := ToCents(subtotal)
	var gst int64
	if !gstFree {
		// Half-up on the cent: 10% of an integer cent amount.
		gst = (sub + 5) / 10
	}
	return Totals{
		Subtotal: FromCents(sub),
		GST:      FromCents(gst),
		Total:    FromCents(sub + gst),
	}, nil
}
