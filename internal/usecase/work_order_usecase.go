package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/domain/scheduling"
	"moto_workshop/internal/infrastructure/logger"
	"moto_workshop/internal/usecase/interfaces"
)

var (
	ErrInvalidDescription    = errors.New("description is required")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidEstimatedHours = errors.New("estimated hours must be between 0 and 168")
)

// CreateWorkOrderInput is the intake form.
type CreateWorkOrderInput struct {
	JobNumber       string
	Description     string
	CustomerID      string
	Priority        entities.WorkOrderPriority
	CustomerWaiting bool
	EstimatedHours  *float64
}

// IWorkOrderUseCase covers intake and status transitions. Placement on the
// board goes through IScheduleUseCase.
type IWorkOrderUseCase interface {
	CreateWorkOrder(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error)
	GetWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo  interfaces.IWorkOrderRepository
	cache interfaces.IBoardCache
	log   *zap.Logger
	now   func() time.Time
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, cache interfaces.IBoardCache, log *zap.Logger) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		repo:  repo,
		cache: cache,
		log:   logger.OrNop(log).Named("workorder.usecase"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (u *WorkOrderUseCase) CreateWorkOrder(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return entities.WorkOrder{}, ErrInvalidDescription
	}
	if in.Priority == "" {
		in.Priority = entities.WorkOrderPriorityNormal
	}
	if !in.Priority.Valid() {
		return entities.WorkOrder{}, ErrInvalidPriority
	}
	if in.EstimatedHours != nil && !scheduling.ValidHours(*in.EstimatedHours) {
		return entities.WorkOrder{}, ErrInvalidEstimatedHours
	}

	id := uuid.NewString()
	jobNumber := strings.TrimSpace(in.JobNumber)
	if jobNumber == "" {
		jobNumber = "WO-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
	}

	now := u.now()
	wo := entities.WorkOrder{
		ID:              id,
		JobNumber:       jobNumber,
		Description:     in.Description,
		CustomerID:      strings.TrimSpace(in.CustomerID),
		Status:          entities.WorkOrderStatusPending,
		Priority:        in.Priority,
		CustomerWaiting: in.CustomerWaiting,
		EstimatedHours:  in.EstimatedHours,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := u.repo.Create(ctx, wo)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	u.log.Info("work order created", zap.String("work_order_id", created.ID), zap.String("job_number", created.JobNumber))
	u.backlogChanged(ctx)
	return created, nil
}

func (u *WorkOrderUseCase) GetWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

func (u *WorkOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if !status.Valid() {
		return entities.WorkOrder{}, ErrInvalidStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	u.log.Info("work order status changed", zap.String("work_order_id", id), zap.String("status", string(status)))
	u.backlogChanged(ctx)
	return updated, nil
}

// backlogChanged drops cached boards; status and intake both move jobs in or
// out of the backlog and the board cells.
func (u *WorkOrderUseCase) backlogChanged(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateAll(ctx); err != nil {
		u.log.Warn("board cache invalidate failed", zap.Error(err))
	}
}
