package billing

import (
	"testing"
	"time"

	"moto_workshop/internal/domain/entities"
)

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name     string
		subtotal float64
		gstFree  bool
		want     Totals
	}{
		{name: "round hundred", subtotal: 100, want: Totals{Subtotal: 100, GST: 10, Total: 110}},
		{name: "half cent rounds up", subtotal: 123.45, want: Totals{Subtotal: 123.45, GST: 12.35, Total: 135.80}},
		{name: "below half rounds down", subtotal: 0.04, want: Totals{Subtotal: 0.04, GST: 0, Total: 0.04}},
		{name: "gst free", subtotal: 80, gstFree: true, want: Totals{Subtotal: 80, GST: 0, Total: 80}},
		{name: "zero", subtotal: 0, want: Totals{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeTotals(tc.subtotal, tc.gstFree)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}

	if _, err := ComputeTotals(-1, false); err != ErrNegativeAmount {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestBuildPlan_SumsToTotal(t *testing.T) {
	loc := time.UTC
	first := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)

	for _, total := range []float64{0.01, 99.99, 100, 1000.01, 1234.57} {
		for count := 1; count <= MaxInstallments; count++ {
			plan, err := BuildPlan(PlanRequest{Total: total, Count: count, Interval: entities.PlanIntervalWeekly, FirstDue: first}, loc)
			if err != nil {
				t.Fatalf("total %v count %d: %v", total, count, err)
			}
			if len(plan) != count {
				t.Fatalf("expected %d installments, got %d", count, len(plan))
			}
			var sum int64
			for i, in := range plan {
				sum += ToCents(in.Amount)
				if in.Number != i+1 || in.Status != entities.InstallmentStatusPending {
					t.Fatalf("unexpected installment %+v", in)
				}
				if i > 0 && ToCents(in.Amount) > ToCents(plan[i-1].Amount) {
					t.Fatalf("later installment larger than earlier: %+v", plan)
				}
			}
			if sum != ToCents(total) {
				t.Fatalf("total %v count %d: sum %d cents", total, count, sum)
			}
		}
	}
}

func TestBuildPlan_Remainder(t *testing.T) {
	plan, err := BuildPlan(PlanRequest{Total: 100, Count: 3, Interval: entities.PlanIntervalMonthly, FirstDue: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)}, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{33.34, 33.33, 33.33}
	for i, in := range plan {
		if in.Amount != want[i] {
			t.Fatalf("installment %d: expected %v, got %v", i+1, want[i], in.Amount)
		}
	}
	dates := []string{"2024-01-31", "2024-02-29", "2024-03-31"}
	for i, in := range plan {
		if got := in.DueDate.Format("2006-01-02"); got != dates[i] {
			t.Fatalf("installment %d: expected due %s, got %s", i+1, dates[i], got)
		}
	}
}

func TestBuildPlan_Validation(t *testing.T) {
	first := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if _, err := BuildPlan(PlanRequest{Total: 10, Count: 0, Interval: entities.PlanIntervalWeekly, FirstDue: first}, time.UTC); err != ErrInvalidInstallmentCount {
		t.Fatalf("expected count error, got %v", err)
	}
	if _, err := BuildPlan(PlanRequest{Total: 10, Count: 25, Interval: entities.PlanIntervalWeekly, FirstDue: first}, time.UTC); err != ErrInvalidInstallmentCount {
		t.Fatalf("expected count error, got %v", err)
	}
	if _, err := BuildPlan(PlanRequest{Total: 10, Count: 2, Interval: "daily", FirstDue: first}, time.UTC); err != ErrInvalidPlanInterval {
		t.Fatalf("expected interval error, got %v", err)
	}
	if _, err := BuildPlan(PlanRequest{Total: -10, Count: 2, Interval: entities.PlanIntervalWeekly, FirstDue: first}, time.UTC); err != ErrNegativeAmount {
		t.Fatalf("expected amount error, got %v", err)
	}
}

func TestDueDate_FortnightlyAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	first := time.Date(2024, 3, 31, 0, 0, 0, 0, loc)
	got := DueDate(first, entities.PlanIntervalFortnightly, 1, loc)
	if got.Format("2006-01-02 15:04") != "2024-04-14 00:00" {
		t.Fatalf("unexpected due date %v", got)
	}
}

func TestResolveStatusAndMarkPaid(t *testing.T) {
	plan := []entities.Installment{
		{Number: 1, Status: entities.InstallmentStatusPending},
		{Number: 2, Status: entities.InstallmentStatusPending},
	}
	if ResolveStatus(plan) != entities.InvoiceStatusOpen {
		t.Fatalf("expected open")
	}

	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	partial, ok := MarkPaid(plan, 1, "pay-1", at)
	if !ok {
		t.Fatalf("expected installment 1 to be found")
	}
	if plan[0].Status != entities.InstallmentStatusPending {
		t.Fatalf("input plan must not be modified")
	}
	if partial[0].PaymentID != "pay-1" || partial[0].PaidAt == nil || !partial[0].PaidAt.Equal(at) {
		t.Fatalf("unexpected installment %+v", partial[0])
	}
	if ResolveStatus(partial) != entities.InvoiceStatusPartiallyPaid {
		t.Fatalf("expected partially paid")
	}

	full, _ := MarkPaid(partial, 2, "pay-2", at)
	if ResolveStatus(full) != entities.InvoiceStatusPaid {
		t.Fatalf("expected paid")
	}

	if _, ok := MarkPaid(plan, 9, "x", at); ok {
		t.Fatalf("expected unknown installment")
	}
	if ResolveStatus(nil) != entities.InvoiceStatusOpen {
		t.Fatalf("empty plan should be open")
	}
}

func TestSummarizeGST(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	invoices := []entities.Invoice{
		{ID: "a", Subtotal: 100, GST: 10, Total: 110, CreatedAt: from},
		{ID: "b", Subtotal: 50, GST: 0, Total: 50, GSTFree: true, CreatedAt: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "c", Subtotal: 200, GST: 20, Total: 220, CreatedAt: to},
		{ID: "d", Subtotal: 1, GST: 0.1, Total: 1.1, CreatedAt: from.Add(-time.Second)},
	}

	got := SummarizeGST(invoices, from, to)
	if got.InvoiceCount != 2 {
		t.Fatalf("expected 2 invoices, got %d", got.InvoiceCount)
	}
	if got.TotalSales != 160 || got.GSTCollected != 10 || got.GSTFreeSubtotal != 50 {
		t.Fatalf("unexpected summary %+v", got)
	}
	if !got.From.Equal(from) || !got.To.Equal(to) {
		t.Fatalf("unexpected period %+v", got)
	}
}
