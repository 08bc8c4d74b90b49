package scheduling

import (
	"math"
	"testing"
	"time"

	"moto_workshop/internal/domain/entities"
)

func hours(v float64) *float64 { return &v }

func at(t time.Time) *time.Time { return &t }

func TestAggregateDay_ClampsFill(t *testing.T) {
	loc := mustLoad(t, "Australia/Sydney")
	mech := entities.Mechanic{ID: "M1", DailyHoursGoal: 8}
	day := time.Date(2024, 3, 13, 0, 0, 0, 0, loc)

	orders := []entities.WorkOrder{
		{ID: "1", AssignedMechanicID: "M1", ScheduledStart: at(day.Add(8 * time.Hour)), MechanicHours: hours(5)},
		{ID: "2", AssignedMechanicID: "M1", ScheduledStart: at(day.Add(13 * time.Hour)), EstimatedHours: hours(4)},
	}

	load := AggregateDay(mech, day, orders, loc)
	if len(load.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(load.Jobs))
	}
	if load.ScheduledHours != 9 {
		t.Fatalf("expected 9 hours, got %v", load.ScheduledHours)
	}
	if load.FillPercent != 100 {
		t.Fatalf("expected fill 100, got %v", load.FillPercent)
	}
}

func TestAggregateDay_Filters(t *testing.T) {
	loc := mustLoad(t, "Australia/Sydney")
	mech := entities.Mechanic{ID: "M1", DailyHoursGoal: 8}
	day := time.Date(2024, 3, 13, 0, 0, 0, 0, loc)
	next := time.Date(2024, 3, 14, 0, 0, 0, 0, loc)

	orders := []entities.WorkOrder{
		{ID: "midnight", AssignedMechanicID: "M1", ScheduledStart: at(day), MechanicHours: hours(1)},
		{ID: "last-second", AssignedMechanicID: "M1", ScheduledStart: at(next.Add(-time.Second)), MechanicHours: hours(1)},
		{ID: "next-day", AssignedMechanicID: "M1", ScheduledStart: at(next), MechanicHours: hours(1)},
		{ID: "other-mech", AssignedMechanicID: "M2", ScheduledStart: at(day.Add(time.Hour)), MechanicHours: hours(1)},
		{ID: "unscheduled", AssignedMechanicID: "M1", MechanicHours: hours(1)},
		{ID: "no-duration", AssignedMechanicID: "M1", ScheduledStart: at(day.Add(2 * time.Hour))},
	}

	load := AggregateDay(mech, day, orders, loc)
	got := []string{}
	for _, j := range load.Jobs {
		got = append(got, j.ID)
	}
	want := []string{"midnight", "last-second", "no-duration"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if load.ScheduledHours != 2 {
		t.Fatalf("expected 2 hours, got %v", load.ScheduledHours)
	}
	if load.FillPercent != 25 {
		t.Fatalf("expected fill 25, got %v", load.FillPercent)
	}
	if !load.Day.Equal(day) || load.MechanicID != "M1" {
		t.Fatalf("unexpected cell identity: %+v", load)
	}
}

func TestAggregateDay_EmptyDay(t *testing.T) {
	loc := mustLoad(t, "UTC")
	load := AggregateDay(entities.Mechanic{ID: "M1", DailyHoursGoal: 8}, time.Date(2024, 3, 13, 0, 0, 0, 0, loc), nil, loc)
	if load.Jobs == nil || len(load.Jobs) != 0 {
		t.Fatalf("expected empty non-nil jobs, got %#v", load.Jobs)
	}
	if load.ScheduledHours != 0 || load.FillPercent != 0 {
		t.Fatalf("unexpected load %+v", load)
	}
}

func TestFillPercent(t *testing.T) {
	cases := []struct {
		name        string
		hours, goal float64
		want        float64
	}{
		{name: "half", hours: 4, goal: 8, want: 50},
		{name: "over", hours: 20, goal: 8, want: 100},
		{name: "negative hours", hours: -3, goal: 8, want: 0},
		{name: "zero goal booked", hours: 1, goal: 0, want: 100},
		{name: "zero goal idle", hours: 0, goal: 0, want: 0},
		{name: "negative goal", hours: 2, goal: -1, want: 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FillPercent(tc.hours, tc.goal)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestBuildMechanicWeek(t *testing.T) {
	loc := mustLoad(t, "Australia/Sydney")
	mech := entities.Mechanic{ID: "M1", DailyHoursGoal: 8}
	days := WeekDays(time.Date(2024, 3, 13, 0, 0, 0, 0, loc), loc)

	orders := []entities.WorkOrder{
		{ID: "mon", AssignedMechanicID: "M1", ScheduledStart: at(days[0].Add(9 * time.Hour)), MechanicHours: hours(2)},
		{ID: "sun", AssignedMechanicID: "M1", ScheduledStart: at(days[6].Add(9 * time.Hour)), MechanicHours: hours(8)},
	}

	week := BuildMechanicWeek(mech, days, orders, loc)
	if week.Mechanic.ID != "M1" {
		t.Fatalf("unexpected mechanic %+v", week.Mechanic)
	}
	if week.Days[0].ScheduledHours != 2 || week.Days[6].FillPercent != 100 {
		t.Fatalf("unexpected week %+v", week.Days)
	}
	for i := 1; i < 6; i++ {
		if len(week.Days[i].Jobs) != 0 {
			t.Fatalf("day %d should be empty", i)
		}
	}
}
