package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase/interfaces"
)

const workOrderColumns = `id, job_number, description, customer_id, status, priority, customer_waiting,
	estimated_hours, mechanic_hours, scheduled_start, scheduled_end, assigned_mechanic_id, created_at, updated_at`

type WorkOrderRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderRepository)(nil)

func NewWorkOrderRepository(db *sql.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db, now: time.Now}
}

func (r *WorkOrderRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	query := `
		INSERT INTO work_orders (` + workOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		wo.ID, wo.JobNumber, wo.Description, nullString(wo.CustomerID), string(wo.Status), string(wo.Priority), wo.CustomerWaiting,
		nullFloat(wo.EstimatedHours), nullFloat(wo.MechanicHours), nullTime(wo.ScheduledStart), nullTime(wo.ScheduledEnd),
		nullString(wo.AssignedMechanicID), wo.CreatedAt.UTC(), wo.UpdatedAt.UTC(),
	)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1`
	wo, err := scanWorkOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.WorkOrder{}, nil
	}
	return wo, err
}

func (r *WorkOrderRepository) ListScheduledBetween(ctx context.Context, start, end time.Time) ([]entities.WorkOrder, error) {
	query := `
		SELECT ` + workOrderColumns + `
		FROM work_orders
		WHERE scheduled_start >= $1 AND scheduled_start < $2
		ORDER BY scheduled_start ASC
	`
	return r.list(ctx, query, start.UTC(), end.UTC())
}

func (r *WorkOrderRepository) ListUnscheduled(ctx context.Context) ([]entities.WorkOrder, error) {
	query := `
		SELECT ` + workOrderColumns + `
		FROM work_orders
		WHERE scheduled_start IS NULL AND status IN ($1, $2, $3)
		ORDER BY created_at ASC
	`
	return r.list(ctx, query,
		string(entities.WorkOrderStatusPending),
		string(entities.WorkOrderStatusInProgress),
		string(entities.WorkOrderStatusWaitingOnParts),
	)
}

// UpdateSchedule is a single UPDATE. A NULL mechanic_hours keeps the stored value.
func (r *WorkOrderRepository) UpdateSchedule(ctx context.Context, id string, upd entities.ScheduleUpdate) (entities.WorkOrder, error) {
	query := `
		UPDATE work_orders
		SET assigned_mechanic_id = $1, scheduled_start = $2, scheduled_end = $3,
			mechanic_hours = COALESCE($4, mechanic_hours), updated_at = $5
		WHERE id = $6
		RETURNING ` + workOrderColumns
	start := upd.Start
	wo, err := scanWorkOrder(r.db.QueryRowContext(ctx, query,
		upd.MechanicID, nullTime(&start), nullTime(upd.End), nullFloat(upd.MechanicHours), r.now().UTC(), id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.WorkOrder{}, nil
	}
	return wo, err
}

func (r *WorkOrderRepository) UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	query := `
		UPDATE work_orders
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + workOrderColumns
	wo, err := scanWorkOrder(r.db.QueryRowContext(ctx, query, string(status), r.now().UTC(), id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.WorkOrder{}, nil
	}
	return wo, err
}

func (r *WorkOrderRepository) list(ctx context.Context, query string, args ...any) ([]entities.WorkOrder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []entities.WorkOrder{}
	for rows.Next() {
		wo, err := scanWorkOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, wo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func scanWorkOrder(s rowScanner) (entities.WorkOrder, error) {
	var (
		wo                   entities.WorkOrder
		status, priority     string
		customerID, mechanic sql.NullString
		estimated, hours     sql.NullFloat64
		start, end           sql.NullTime
	)
	err := s.Scan(
		&wo.ID, &wo.JobNumber, &wo.Description, &customerID, &status, &priority, &wo.CustomerWaiting,
		&estimated, &hours, &start, &end, &mechanic, &wo.CreatedAt, &wo.UpdatedAt,
	)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	wo.CustomerID = customerID.String
	wo.Status = entities.WorkOrderStatus(status)
	wo.Priority = entities.WorkOrderPriority(priority)
	wo.EstimatedHours = floatPtr(estimated)
	wo.MechanicHours = floatPtr(hours)
	wo.ScheduledStart = timePtr(start)
	wo.ScheduledEnd = timePtr(end)
	wo.AssignedMechanicID = mechanic.String
	wo.CreatedAt = wo.CreatedAt.UTC()
	wo.UpdatedAt = wo.UpdatedAt.UTC()
	return wo, nil
}
