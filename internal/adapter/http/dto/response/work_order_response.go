package response

import (
	"time"

	"moto_workshop/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type WorkOrderResponse struct {
	ID                 string     `json:"id"`
	JobNumber          string     `json:"job_number"`
	Description        string     `json:"description"`
	CustomerID         string     `json:"customer_id,omitempty"`
	Status             string     `json:"status"`
	Priority           string     `json:"priority"`
	CustomerWaiting    bool       `json:"customer_waiting"`
	EstimatedHours     *float64   `json:"estimated_hours,omitempty"`
	MechanicHours      *float64   `json:"mechanic_hours,omitempty"`
	DurationHours      float64    `json:"duration_hours"`
	ScheduledStart     *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time `json:"scheduled_end,omitempty"`
	AssignedMechanicID string     `json:"assigned_mechanic_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                 wo.ID,
		JobNumber:          wo.JobNumber,
		Description:        wo.Description,
		CustomerID:         wo.CustomerID,
		Status:             string(wo.Status),
		Priority:           string(wo.Priority),
		CustomerWaiting:    wo.CustomerWaiting,
		EstimatedHours:     wo.EstimatedHours,
		MechanicHours:      wo.MechanicHours,
		DurationHours:      wo.DurationHours(),
		ScheduledStart:     wo.ScheduledStart,
		ScheduledEnd:       wo.ScheduledEnd,
		AssignedMechanicID: wo.AssignedMechanicID,
		CreatedAt:          wo.CreatedAt,
		UpdatedAt:          wo.UpdatedAt,
	}
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, wo := range orders {
		out = append(out, FromWorkOrder(wo))
	}
	return out
}

type MechanicResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DailyHoursGoal float64 `json:"daily_hours_goal"`
	Active         bool    `json:"active"`
}

func FromMechanic(m entities.Mechanic) MechanicResponse {
	return MechanicResponse{ID: m.ID, Name: m.Name, DailyHoursGoal: m.DailyHoursGoal, Active: m.Active}
}

func FromMechanics(ms []entities.Mechanic) []MechanicResponse {
	out := make([]MechanicResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMechanic(m))
	}
	return out
}
