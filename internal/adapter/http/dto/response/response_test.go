package response

import (
	"encoding/json"
	"testing"
	"time"

	"moto_workshop/internal/domain/entities"
)

func TestFromInvoicePayment(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)

	p := entities.InvoicePayment{
		ID:                 "pay-1",
		InvoiceID:          "wo-1",
		InstallmentNumber:  2,
		Amount:             36.67,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: raw,
		ProviderPayload:    map[string]interface{}{"a": "b"},
	}

	res := FromInvoicePayment(p)
	if res.PaymentID != "pay-1" || res.InvoiceID != "wo-1" || res.InstallmentNumber != 2 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "approved" || res.Amount != 36.67 || !res.Date.Equal(now) {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.ProviderPayloadRaw != string(raw) || res.ProviderPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
	if got := FromInvoicePayments(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestFromInvoice_DueDatesInLocation(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	inv := entities.Invoice{
		ID:     "wo-1",
		Status: entities.InvoiceStatusOpen,
		Installments: []entities.Installment{
			// Midnight 1 April in Sydney is still 31 March in UTC.
			{Number: 1, DueDate: time.Date(2024, 3, 31, 13, 0, 0, 0, time.UTC), Amount: 110},
		},
	}

	res := FromInvoice(inv, loc)
	if res.Installments[0].DueDate != "2024-04-01" {
		t.Fatalf("unexpected due date %s", res.Installments[0].DueDate)
	}
}

func TestFromWeekBoard(t *testing.T) {
	loc, _ := time.LoadLocation("Australia/Sydney")
	ws := time.Date(2024, 3, 11, 0, 0, 0, 0, loc)
	hours := 2.5
	start := ws.Add(9 * time.Hour)

	b := entities.WeekBoard{WeekStart: ws, Today: ws.AddDate(0, 0, 2)}
	mw := entities.MechanicWeek{Mechanic: entities.Mechanic{ID: "M1", Name: "Ana", DailyHoursGoal: 8, Active: true}}
	for i := range b.Days {
		b.Days[i] = ws.AddDate(0, 0, i)
		mw.Days[i] = entities.DayLoad{MechanicID: "M1", Day: b.Days[i]}
	}
	mw.Days[0].Jobs = []entities.WorkOrder{{ID: "wo-1", MechanicHours: &hours, ScheduledStart: &start}}
	mw.Days[0].ScheduledHours = 2.5
	mw.Days[0].FillPercent = 31.25
	b.Mechanics = []entities.MechanicWeek{mw}
	b.Backlog = []entities.RankedWorkOrder{{WorkOrder: entities.WorkOrder{ID: "wo-2"}, Score: 70}}

	res := FromWeekBoard(b, loc)
	if res.WeekStart != "2024-03-11" || res.Today != "2024-03-13" || len(res.Days) != 7 || res.Days[6] != "2024-03-17" {
		t.Fatalf("unexpected header: %+v", res)
	}
	cell := res.Mechanics[0].Days[0]
	if cell.Date != "2024-03-11" || cell.FillPercent != 31.25 || cell.Jobs[0].DurationHours != 2.5 {
		t.Fatalf("unexpected cell: %+v", cell)
	}
	if res.Backlog[0].Score != 70 || res.Backlog[0].WorkOrder.ID != "wo-2" {
		t.Fatalf("unexpected backlog: %+v", res.Backlog)
	}
	if res.Mechanics[0].Days[3].Jobs == nil {
		t.Fatalf("empty days must render jobs as []")
	}
}
