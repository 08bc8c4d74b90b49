package entities

import "time"

// WorkOrderStatus is the workshop lifecycle of a job.
type WorkOrderStatus string

const (
	WorkOrderStatusPending        WorkOrderStatus = "pending"
	WorkOrderStatusInProgress     WorkOrderStatus = "in_progress"
	WorkOrderStatusWaitingOnParts WorkOrderStatus = "waiting_on_parts"
	WorkOrderStatusCompleted      WorkOrderStatus = "completed"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusPending, WorkOrderStatusInProgress, WorkOrderStatusWaitingOnParts, WorkOrderStatusCompleted:
		return true
	}
	return false
}

// OpenWorkOrderStatuses are the statuses that still need bench time.
var OpenWorkOrderStatuses = []WorkOrderStatus{
	WorkOrderStatusPending,
	WorkOrderStatusInProgress,
	WorkOrderStatusWaitingOnParts,
}

// WorkOrderPriority is the priority declared at intake.
type WorkOrderPriority string

const (
	WorkOrderPriorityNormal WorkOrderPriority = "normal"
	WorkOrderPriorityHigh   WorkOrderPriority = "high"
	WorkOrderPriorityUrgent WorkOrderPriority = "urgent"
)

func (p WorkOrderPriority) Valid() bool {
	switch p {
	case WorkOrderPriorityNormal, WorkOrderPriorityHigh, WorkOrderPriorityUrgent:
		return true
	}
	return false
}

// WorkOrder is a unit of workshop labor tracked from intake to completion.
//
// Duration fields:
//   - MechanicHours is the canonical duration and the only one written by the scheduler.
//   - EstimatedHours is the legacy field; older rows only carry this one, so it is
//     kept as a read fallback (see DurationHours).
//
// ScheduledStart/ScheduledEnd are nil while the job sits in the backlog. When
// ScheduledEnd is set it always equals ScheduledStart + DurationHours().
type WorkOrder struct {
	ID                 string            `json:"id"`
	JobNumber          string            `json:"job_number"`
	Description        string            `json:"description"`
	CustomerID         string            `json:"customer_id,omitempty"`
	Status             WorkOrderStatus   `json:"status"`
	Priority           WorkOrderPriority `json:"priority"`
	CustomerWaiting    bool              `json:"customer_waiting"`
	EstimatedHours     *float64          `json:"estimated_hours,omitempty"`
	MechanicHours      *float64          `json:"mechanic_hours,omitempty"`
	ScheduledStart     *time.Time        `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time        `json:"scheduled_end,omitempty"`
	AssignedMechanicID string            `json:"assigned_mechanic_id,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// DurationHours returns mechanic hours, falling back to estimated hours, else 0.
func (w WorkOrder) DurationHours() float64 {
	if w.MechanicHours != nil {
		return *w.MechanicHours
	}
	if w.EstimatedHours != nil {
		return *w.EstimatedHours
	}
	return 0
}

func (w WorkOrder) IsScheduled() bool {
	return w.ScheduledStart != nil
}

// ScheduleUpdate is the single-row write issued when a job is placed on the board.
// A nil End clears any previous end; a nil MechanicHours leaves the stored
// duration untouched.
type ScheduleUpdate struct {
	MechanicID    string
	Start         time.Time
	End           *time.Time
	MechanicHours *float64
}
