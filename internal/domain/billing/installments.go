package billing

import (
	"errors"
	"time"

	"moto_workshop/internal/domain/entities"
)

const MaxInstallments = 24

var (
	ErrInvalidInstallmentCount = errors.New("installment count must be between 1 and 24")
	ErrInvalidPlanInterval     = errors.New("invalid installment interval")
)

// PlanRequest describes how an invoice total is split.
type PlanRequest struct {
	Total    float64
	Count    int
	Interval entities.PlanInterval
	FirstDue time.Time
}

// BuildPlan splits Total into Count installments. The base share is
// total/count in cents; leftover cents go one each to the earliest
// installments, so the amounts always add back to the total.
func BuildPlan(req PlanRequest, loc *time.Location) ([]entities.Installment, error) {
	if req.Count < 1 || req.Count > MaxInstallments {
		return nil, ErrInvalidInstallmentCount
	}
	if !req.Interval.Valid() {
		return nil, ErrInvalidPlanInterval
	}
	if req.Total < 0 {
		return nil, ErrNegativeAmount
	}

	total := ToCents(req.Total)
	n := int64(req.Count)
	base, rem := total/n, total%n

	first := req.FirstDue.In(loc)
	plan := make([]entities.Installment, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		cents := base
		if int64(i) < rem {
			cents++
		}
		plan = append(plan, entities.Installment{
			Number:  i + 1,
			DueDate: DueDate(first, req.Interval, i, loc),
			Amount:  FromCents(cents),
			Status:  entities.InstallmentStatusPending,
		})
	}
	return plan, nil
}

// DueDate steps i intervals from first by calendar arithmetic in loc.
func DueDate(first time.Time, interval entities.PlanInterval, i int, loc *time.Location) time.Time {
	first = first.In(loc)
	y, m, d := first.Date()
	switch interval {
	case entities.PlanIntervalWeekly:
		return time.Date(y, m, d+7*i, 0, 0, 0, 0, loc)
	case entities.PlanIntervalFortnightly:
		return time.Date(y, m, d+14*i, 0, 0, 0, 0, loc)
	default:
		return addMonths(first, i, loc)
	}
}

// addMonths keeps the day of month, pinning to the last day when the target
// month is shorter (31 Jan + 1 month = 29 Feb in a leap year).
func addMonths(t time.Time, months int, loc *time.Location) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, loc)
	lastDay := time.Date(firstOfTarget.Year(), firstOfTarget.Month()+1, 0, 0, 0, 0, 0, loc).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, loc)
}

// ResolveStatus derives the invoice status from its installments.
func ResolveStatus(plan []entities.Installment) entities.InvoiceStatus {
	paid := 0
	for _, in := range plan {
		if in.Status == entities.InstallmentStatusPaid {
			paid++
		}
	}
	switch {
	case len(plan) > 0 && paid == len(plan):
		return entities.InvoiceStatusPaid
	case paid > 0:
		return entities.InvoiceStatusPartiallyPaid
	default:
		return entities.InvoiceStatusOpen
	}
}

// MarkPaid returns a copy of plan with installment number settled by paymentID.
func MarkPaid(plan []entities.Installment, number int, paymentID string, at time.Time) ([]entities.Installment, bool) {
	out := make([]entities.Installment, len(plan))
	copy(out, plan)
	for i := range out {
		if out[i].Number != number {
			continue
		}
		paidAt := at
		out[i].Status = entities.InstallmentStatusPaid
		out[i].PaidAt = &paidAt
		out[i].PaymentID = paymentID
		return out, true
	}
	return out, false
}
