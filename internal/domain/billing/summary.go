package billing

import (
	"time"

	"moto_workshop/internal/domain/entities"
)

// SummarizeGST aggregates invoices created in [from, to) into BAS figures.
func SummarizeGST(invoices []entities.Invoice, from, to time.Time) entities.GSTSummary {
	var sales, gst, free int64
	count := 0
	for _, inv := range invoices {
		if inv.CreatedAt.Before(from) || !inv.CreatedAt.Before(to) {
			continue
		}
		count++
		sales += ToCents(inv.Total)
		gst += ToCents(inv.GST)
		if inv.GSTFree {
			free += ToCents(inv.Subtotal)
		}
	}
	return entities.GSTSummary{
		From:            from,
		To:              to,
		InvoiceCount:    count,
		TotalSales:      FromCents(sales),
		GSTCollected:    FromCents(gst),
		GSTFreeSubtotal: FromCents(free),
	}
}
