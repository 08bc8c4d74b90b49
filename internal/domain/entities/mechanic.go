package entities

import "time"

// DefaultDailyHoursGoal is used when a mechanic row carries no goal.
const DefaultDailyHoursGoal = 8.0

type Mechanic struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DailyHoursGoal float64   `json:"daily_hours_goal"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// Customer is read-only reference data for the scheduler; only the VIP flag
// feeds the priority score.
type Customer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsPriority bool   `json:"is_priority"`
}
