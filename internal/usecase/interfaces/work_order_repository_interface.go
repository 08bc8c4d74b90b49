package interfaces

import (
	"context"
	"time"

	"moto_workshop/internal/domain/entities"
)

// IWorkOrderRepository abstracts persistence for WorkOrder.
//
// The scheduler must be able to:
//   - fetch work orders with scheduled_start in [start, end), ordered by scheduled_start
//   - fetch unscheduled work orders in an open status, ordered by creation time
//   - update one work order's mechanic, start, end and duration in a single call
//
// Lookups return a zero-value WorkOrder (empty ID) when the row does not exist.
type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	ListScheduledBetween(ctx context.Context, start, end time.Time) ([]entities.WorkOrder, error)
	ListUnscheduled(ctx context.Context) ([]entities.WorkOrder, error)
	UpdateSchedule(ctx context.Context, id string, upd entities.ScheduleUpdate) (entities.WorkOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error)
}
