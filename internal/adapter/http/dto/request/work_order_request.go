package request

type CreateWorkOrderRequest struct {
	JobNumber       string   `json:"job_number"`
	Description     string   `json:"description" binding:"required"`
	CustomerID      string   `json:"customer_id"`
	Priority        string   `json:"priority"`
	CustomerWaiting bool     `json:"customer_waiting"`
	EstimatedHours  *float64 `json:"estimated_hours"`
}

type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateMechanicRequest struct {
	Name           string   `json:"name" binding:"required"`
	DailyHoursGoal *float64 `json:"daily_hours_goal"`
}
