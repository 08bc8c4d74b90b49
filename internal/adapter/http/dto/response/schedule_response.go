package response

import (
	"time"

	"moto_workshop/internal/domain/entities"
)

type DayLoadResponse struct {
	MechanicID     string              `json:"mechanic_id"`
	Date           string              `json:"date"`
	Jobs           []WorkOrderResponse `json:"jobs"`
	ScheduledHours float64             `json:"scheduled_hours"`
	FillPercent    float64             `json:"fill_percent"`
}

func FromDayLoad(d entities.DayLoad, loc *time.Location) DayLoadResponse {
	return DayLoadResponse{
		MechanicID:     d.MechanicID,
		Date:           d.Day.In(loc).Format(dateLayout),
		Jobs:           FromWorkOrders(d.Jobs),
		ScheduledHours: d.ScheduledHours,
		FillPercent:    d.FillPercent,
	}
}

type MechanicWeekResponse struct {
	Mechanic MechanicResponse  `json:"mechanic"`
	Days     []DayLoadResponse `json:"days"`
}

type BacklogItemResponse struct {
	WorkOrder WorkOrderResponse `json:"work_order"`
	Score     int               `json:"score"`
}

func FromBacklog(items []entities.RankedWorkOrder) []BacklogItemResponse {
	out := make([]BacklogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, BacklogItemResponse{WorkOrder: FromWorkOrder(it.WorkOrder), Score: it.Score})
	}
	return out
}

type WeekBoardResponse struct {
	WeekStart string                 `json:"week_start"`
	Days      []string               `json:"days"`
	Today     string                 `json:"today"`
	Mechanics []MechanicWeekResponse `json:"mechanics"`
	Backlog   []BacklogItemResponse  `json:"backlog"`
}

func FromWeekBoard(b entities.WeekBoard, loc *time.Location) WeekBoardResponse {
	days := make([]string, 0, len(b.Days))
	for _, d := range b.Days {
		days = append(days, d.In(loc).Format(dateLayout))
	}

	rows := make([]MechanicWeekResponse, 0, len(b.Mechanics))
	for _, mw := range b.Mechanics {
		row := MechanicWeekResponse{Mechanic: FromMechanic(mw.Mechanic), Days: make([]DayLoadResponse, 0, len(mw.Days))}
		for _, d := range mw.Days {
			row.Days = append(row.Days, FromDayLoad(d, loc))
		}
		rows = append(rows, row)
	}

	return WeekBoardResponse{
		WeekStart: b.WeekStart.In(loc).Format(dateLayout),
		Days:      days,
		Today:     b.Today.In(loc).Format(dateLayout),
		Mechanics: rows,
		Backlog:   FromBacklog(b.Backlog),
	}
}

// ScheduleResponse reports the outcome of a placement.
type ScheduleResponse struct {
	Outcome   string            `json:"outcome"`
	WorkOrder WorkOrderResponse `json:"work_order"`
}
