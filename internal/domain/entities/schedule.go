package entities

import "time"

// DayLoad is one cell of the week board: the jobs a mechanic has on a day and
// how full that day is against the mechanic's goal. It is derived, never stored.
type DayLoad struct {
	MechanicID     string      `json:"mechanic_id"`
	Day            time.Time   `json:"day"`
	Jobs           []WorkOrder `json:"jobs"`
	ScheduledHours float64     `json:"scheduled_hours"`
	FillPercent    float64     `json:"fill_percent"`
}

// MechanicWeek is one row of the week board.
type MechanicWeek struct {
	Mechanic Mechanic   `json:"mechanic"`
	Days     [7]DayLoad `json:"days"`
}

// RankedWorkOrder pairs a backlog job with its priority score. The score is
// only a sort key and is never persisted.
type RankedWorkOrder struct {
	WorkOrder WorkOrder `json:"work_order"`
	Score     int       `json:"score"`
}

// WeekBoard is the Monday-start scheduling view.
type WeekBoard struct {
	WeekStart time.Time         `json:"week_start"`
	Days      [7]time.Time      `json:"days"`
	Today     time.Time         `json:"today"`
	Mechanics []MechanicWeek    `json:"mechanics"`
	Backlog   []RankedWorkOrder `json:"backlog"`
}

// ScheduleCommand places a work order on a mechanic's calendar.
// DurationHours is optional; nil falls back to the job's declared duration.
type ScheduleCommand struct {
	WorkOrderID   string
	MechanicID    string
	Start         time.Time
	DurationHours *float64
}

// ScheduleOutcome is the typed result of a schedule attempt.
type ScheduleOutcome string

const (
	// ScheduleOutcomeScheduled means the single update was persisted.
	ScheduleOutcomeScheduled ScheduleOutcome = "scheduled"
	// ScheduleOutcomeRejected means nothing was sent to storage (validation or missing rows).
	ScheduleOutcomeRejected ScheduleOutcome = "rejected"
	// ScheduleOutcomeFailed means storage reported an error; nothing changed.
	ScheduleOutcomeFailed ScheduleOutcome = "failed"
)

// ScheduleResult must be branched on by callers: Err is non-nil unless the
// outcome is ScheduleOutcomeScheduled.
type ScheduleResult struct {
	Outcome   ScheduleOutcome
	WorkOrder WorkOrder
	Err       error
}

func (r ScheduleResult) OK() bool {
	return r.Outcome == ScheduleOutcomeScheduled && r.Err == nil
}

// ScheduleEvent is published on the change stream after a successful schedule.
type ScheduleEvent struct {
	WorkOrderID    string     `json:"work_order_id"`
	JobNumber      string     `json:"job_number"`
	MechanicID     string     `json:"mechanic_id"`
	ScheduledStart time.Time  `json:"scheduled_start"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}
