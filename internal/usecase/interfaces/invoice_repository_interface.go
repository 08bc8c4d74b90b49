package interfaces

import (
	"context"
	"time"

	"moto_workshop/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// The billing flow must be able to:
//   - create one invoice per work order (conditional on id)
//   - replace the installment plan and status after a payment
//   - list invoices created in a period for the BAS summary
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	UpdateInstallments(ctx context.Context, id string, installments []entities.Installment, status entities.InvoiceStatus) (entities.Invoice, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Invoice, error)
}

// IInvoicePaymentRepository abstracts DynamoDB persistence for InvoicePayment.
type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}
