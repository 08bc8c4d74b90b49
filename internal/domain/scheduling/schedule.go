package scheduling

import (
	"math"
	"time"

	"moto_workshop/internal/domain/entities"
)

// MaxJobHours caps a single job at one week of bench time.
const MaxJobHours = 7 * 24

// ValidHours reports whether hours can be booked as one job. NaN, infinities,
// negatives and anything past MaxJobHours are refused, which also keeps
// ComputeEnd clear of time.Duration overflow.
func ValidHours(hours float64) bool {
	return !math.IsNaN(hours) && hours >= 0 && hours <= MaxJobHours
}

// ComputeEnd is start plus hours, rounded to the nearest nanosecond.
func ComputeEnd(start time.Time, hours float64) time.Time {
	return start.Add(time.Duration(math.Round(hours * float64(time.Hour))))
}

// ResolveDuration picks the hours used for a schedule write: the supplied
// value wins, then the job's declared duration when positive. ok is false when
// neither is available, in which case no end time is written.
func ResolveDuration(supplied *float64, wo entities.WorkOrder) (hours float64, ok bool) {
	if supplied != nil {
		return *supplied, true
	}
	if d := wo.DurationHours(); d > 0 {
		return d, true
	}
	return 0, false
}

// PlanSchedule builds the single update for cmd against wo.
func PlanSchedule(cmd entities.ScheduleCommand, wo entities.WorkOrder) entities.ScheduleUpdate {
	upd := entities.ScheduleUpdate{
		MechanicID: cmd.MechanicID,
		Start:      cmd.Start,
	}
	hours, ok := ResolveDuration(cmd.DurationHours, wo)
	if !ok {
		return upd
	}
	end := ComputeEnd(cmd.Start, hours)
	upd.End = &end
	upd.MechanicHours = &hours
	return upd
}
