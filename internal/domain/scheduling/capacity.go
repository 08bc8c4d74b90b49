package scheduling

import (
	"time"

	"moto_workshop/internal/domain/entities"
)

// FillPercent is scheduled hours against the goal, clamped to [0, 100].
// A non-positive goal reads as full whenever anything is booked.
func FillPercent(hours, goal float64) float64 {
	if goal <= 0 {
		if hours > 0 {
			return 100
		}
		return 0
	}
	pct := hours / goal * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// AggregateDay collects the jobs assigned to mechanic that start within the
// local day of `day`. Hours use each job's duration (mechanic hours, then the
// legacy estimate, then 0). Jobs keep the order they were passed in.
func AggregateDay(mechanic entities.Mechanic, day time.Time, orders []entities.WorkOrder, loc *time.Location) entities.DayLoad {
	start, end := DayBounds(day, loc)
	load := entities.DayLoad{
		MechanicID: mechanic.ID,
		Day:        start,
		Jobs:       []entities.WorkOrder{},
	}
	for _, wo := range orders {
		if wo.AssignedMechanicID != mechanic.ID || wo.ScheduledStart == nil {
			continue
		}
		s := *wo.ScheduledStart
		if s.Before(start) || !s.Before(end) {
			continue
		}
		load.Jobs = append(load.Jobs, wo)
		load.ScheduledHours += wo.DurationHours()
	}
	load.FillPercent = FillPercent(load.ScheduledHours, mechanic.DailyHoursGoal)
	return load
}

// BuildMechanicWeek aggregates one mechanic across the seven days.
func BuildMechanicWeek(mechanic entities.Mechanic, days [7]time.Time, orders []entities.WorkOrder, loc *time.Location) entities.MechanicWeek {
	week := entities.MechanicWeek{Mechanic: mechanic}
	for i, d := range days {
		week.Days[i] = AggregateDay(mechanic, d, orders, loc)
	}
	return week
}
