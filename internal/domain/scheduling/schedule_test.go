package scheduling

import (
	"math"
	"testing"
	"time"

	"moto_workshop/internal/domain/entities"
)

func TestComputeEnd(t *testing.T) {
	loc := mustLoad(t, "Australia/Sydney")
	start := time.Date(2024, 3, 13, 9, 0, 0, 0, loc)

	end := ComputeEnd(start, 2.5)
	if !end.Equal(time.Date(2024, 3, 13, 11, 30, 0, 0, loc)) {
		t.Fatalf("unexpected end %v", end)
	}
	if end.Sub(start) != 150*time.Minute {
		t.Fatalf("round trip mismatch: %v", end.Sub(start))
	}
	if again := ComputeEnd(start, 2.5); !again.Equal(end) {
		t.Fatalf("expected identical end, got %v and %v", end, again)
	}
}

func TestComputeEnd_RoundTrip(t *testing.T) {
	start := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)
	for _, h := range []float64{0, 0.25, 1, 1.5, 3.75, 7.25, 12} {
		end := ComputeEnd(start, h)
		if got := end.Sub(start).Hours(); got != h {
			t.Fatalf("hours %v: got %v", h, got)
		}
	}
}

func TestResolveDuration(t *testing.T) {
	declared := entities.WorkOrder{EstimatedHours: hours(3)}

	if h, ok := ResolveDuration(hours(1.5), declared); !ok || h != 1.5 {
		t.Fatalf("supplied value must win, got %v %v", h, ok)
	}
	if h, ok := ResolveDuration(nil, declared); !ok || h != 3 {
		t.Fatalf("expected fallback to declared hours, got %v %v", h, ok)
	}
	if _, ok := ResolveDuration(nil, entities.WorkOrder{}); ok {
		t.Fatalf("expected no duration")
	}
	if h, ok := ResolveDuration(hours(0), declared); !ok || h != 0 {
		t.Fatalf("explicit zero is still a supplied value, got %v %v", h, ok)
	}
}

func TestPlanSchedule(t *testing.T) {
	start := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	upd := PlanSchedule(entities.ScheduleCommand{WorkOrderID: "wo", MechanicID: "M1", Start: start, DurationHours: hours(2.5)}, entities.WorkOrder{})
	if upd.MechanicID != "M1" || !upd.Start.Equal(start) {
		t.Fatalf("unexpected update %+v", upd)
	}
	if upd.End == nil || !upd.End.Equal(start.Add(150*time.Minute)) {
		t.Fatalf("unexpected end %v", upd.End)
	}
	if upd.MechanicHours == nil || *upd.MechanicHours != 2.5 {
		t.Fatalf("unexpected hours %v", upd.MechanicHours)
	}

	bare := PlanSchedule(entities.ScheduleCommand{WorkOrderID: "wo", MechanicID: "M1", Start: start}, entities.WorkOrder{})
	if bare.End != nil || bare.MechanicHours != nil {
		t.Fatalf("expected no end and no hours, got %+v", bare)
	}
}

func TestClocks(t *testing.T) {
	fixed := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)
	if got := (FixedClock{At: fixed}).Now(); !got.Equal(fixed) {
		t.Fatalf("unexpected fixed now %v", got)
	}

	loc := mustLoad(t, "Australia/Sydney")
	if got := (SystemClock{Location: loc}).Now(); got.Location() != loc {
		t.Fatalf("expected workshop location, got %v", got.Location())
	}
}

func TestValidHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  bool
	}{
		{0, true},
		{2.5, true},
		{MaxJobHours, true},
		{MaxJobHours + 0.01, false},
		{-0.5, false},
		{3e6, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}
	for _, tc := range cases {
		if got := ValidHours(tc.hours); got != tc.want {
			t.Fatalf("ValidHours(%v) = %v, want %v", tc.hours, got, tc.want)
		}
	}

	// The largest accepted job still ends after it starts.
	start := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)
	if end := ComputeEnd(start, MaxJobHours); end.Sub(start) != MaxJobHours*time.Hour {
		t.Fatalf("unexpected end %v", end)
	}
}
