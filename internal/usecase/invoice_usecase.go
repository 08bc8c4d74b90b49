package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"moto_workshop/internal/domain/billing"
	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceAlreadyExists = errors.New("invoice already exists")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoiceAmount = errors.New("invalid invoice amount")
	ErrInvalidPeriod        = errors.New("invalid period: from must be before to")
)

// CreateInvoiceInput bills a work order. Installments defaults to 1, Interval
// to monthly and FirstDue to today in the workshop location.
type CreateInvoiceInput struct {
	WorkOrderID  string
	Subtotal     float64
	GSTFree      bool
	Installments int
	Interval     entities.PlanInterval
	FirstDue     time.Time
}

// IInvoiceUseCase exposes invoice operations:
//   - one invoice per work order, GST on top of the ex-GST subtotal
//   - optional installment plan
//   - BAS GST summary for a period
type IInvoiceUseCase interface {
	CreateInvoice(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error)
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
	GSTSummary(ctx context.Context, from, to time.Time) (entities.GSTSummary, error)
}

type InvoiceUseCase struct {
	repo       interfaces.IInvoiceRepository
	workOrders interfaces.IWorkOrderRepository
	loc        *time.Location
	now        func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, workOrders interfaces.IWorkOrderRepository, loc *time.Location) *InvoiceUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &InvoiceUseCase{repo: repo, workOrders: workOrders, loc: loc, now: time.Now}
}

func (u *InvoiceUseCase) CreateInvoice(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error) {
	workOrderID := strings.TrimSpace(in.WorkOrderID)
	if workOrderID == "" {
		return entities.Invoice{}, ErrInvalidWorkOrderID
	}
	if in.Subtotal <= 0 {
		return entities.Invoice{}, ErrInvalidInvoiceAmount
	}
	if in.Installments == 0 {
		in.Installments = 1
	}
	if in.Interval == "" {
		in.Interval = entities.PlanIntervalMonthly
	}
	if in.FirstDue.IsZero() {
		in.FirstDue = u.now()
	}

	totals, err := billing.ComputeTotals(in.Subtotal, in.GSTFree)
	if err != nil {
		return entities.Invoice{}, ErrInvalidInvoiceAmount
	}
	plan, err := billing.BuildPlan(billing.PlanRequest{
		Total:    totals.Total,
		Count:    in.Installments,
		Interval: in.Interval,
		FirstDue: in.FirstDue,
	}, u.loc)
	if err != nil {
		return entities.Invoice{}, err
	}

	wo, err := u.workOrders.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if wo.ID == "" {
		return entities.Invoice{}, ErrWorkOrderNotFound
	}

	// Enforce: 1 invoice per work order.
	if existing, err := u.repo.GetByID(ctx, workOrderID); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		return entities.Invoice{}, ErrInvoiceAlreadyExists
	}

	now := u.now().UTC()
	inv := entities.Invoice{
		ID:           workOrderID,
		WorkOrderID:  workOrderID,
		Subtotal:     totals.Subtotal,
		GST:          totals.GST,
		Total:        totals.Total,
		GSTFree:      in.GSTFree,
		Status:       entities.InvoiceStatusOpen,
		Installments: plan,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, inv)
}

func (u *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) GSTSummary(ctx context.Context, from, to time.Time) (entities.GSTSummary, error) {
	if from.IsZero() || to.IsZero() || !from.Before(to) {
		return entities.GSTSummary{}, ErrInvalidPeriod
	}
	invoices, err := u.repo.ListCreatedBetween(ctx, from, to)
	if err != nil {
		return entities.GSTSummary{}, err
	}
	return billing.SummarizeGST(invoices, from, to), nil
}
