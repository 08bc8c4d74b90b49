package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/domain/scheduling"
	"moto_workshop/internal/infrastructure/logger"
	"moto_workshop/internal/usecase/interfaces"
)

var (
	ErrInvalidWorkOrderID    = errors.New("invalid work order id")
	ErrInvalidMechanicID     = errors.New("invalid mechanic id")
	ErrMissingScheduleStart  = errors.New("schedule start is required")
	ErrInvalidDuration       = errors.New("duration hours must be between 0 and 168")
	ErrWorkOrderNotFound     = errors.New("work order not found")
	ErrMechanicNotFound      = errors.New("mechanic not found")
	ErrMechanicInactive      = errors.New("mechanic is not active")
	ErrSchedulePersistFailed = errors.New("schedule update failed")
)

// IScheduleUseCase is the scheduling board: ranking the backlog, laying out the
// Monday-start week per mechanic and placing jobs on it.
//
// A zero anchor/day means "today" according to the injected clock.
type IScheduleUseCase interface {
	GetWeekBoard(ctx context.Context, anchor time.Time) (entities.WeekBoard, error)
	ListBacklog(ctx context.Context) ([]entities.RankedWorkOrder, error)
	GetMechanicDay(ctx context.Context, mechanicID string, day time.Time) (entities.DayLoad, error)
	ListWeekOrdersForMechanic(ctx context.Context, mechanicID string, anchor time.Time) (entities.Mechanic, []entities.WorkOrder, error)
	ScheduleWorkOrder(ctx context.Context, cmd entities.ScheduleCommand) entities.ScheduleResult
}

type ScheduleUseCase struct {
	workOrders interfaces.IWorkOrderRepository
	mechanics  interfaces.IMechanicRepository
	customers  interfaces.ICustomerRepository
	cache      interfaces.IBoardCache
	events     interfaces.IScheduleEventPublisher
	clock      scheduling.Clock
	loc        *time.Location
	log        *zap.Logger
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

// NewScheduleUseCase wires the board. cache and events are optional (nil disables them).
func NewScheduleUseCase(
	workOrders interfaces.IWorkOrderRepository,
	mechanics interfaces.IMechanicRepository,
	customers interfaces.ICustomerRepository,
	cache interfaces.IBoardCache,
	events interfaces.IScheduleEventPublisher,
	clock scheduling.Clock,
	loc *time.Location,
	log *zap.Logger,
) *ScheduleUseCase {
	if loc == nil {
		loc = time.Local
	}
	if clock == nil {
		clock = scheduling.SystemClock{Location: loc}
	}
	return &ScheduleUseCase{
		workOrders: workOrders,
		mechanics:  mechanics,
		customers:  customers,
		cache:      cache,
		events:     events,
		clock:      clock,
		loc:        loc,
		log:        logger.OrNop(log).Named("schedule.usecase"),
	}
}

func (u *ScheduleUseCase) anchorOrToday(t time.Time) time.Time {
	if t.IsZero() {
		return u.clock.Now()
	}
	return t
}

func (u *ScheduleUseCase) GetWeekBoard(ctx context.Context, anchor time.Time) (entities.WeekBoard, error) {
	anchor = u.anchorOrToday(anchor)
	weekStart, weekEnd := scheduling.WeekBounds(anchor, u.loc)
	today := scheduling.StartOfDay(u.clock.Now(), u.loc)

	if u.cache != nil {
		board, found, err := u.cache.Get(ctx, weekStart)
		switch {
		case err != nil:
			u.log.Warn("board cache read failed", zap.Time("week_start", weekStart), zap.Error(err))
		case found:
			board.Today = today
			return board, nil
		}
	}

	mechanics, err := u.mechanics.ListActive(ctx)
	if err != nil {
		return entities.WeekBoard{}, err
	}
	orders, err := u.workOrders.ListScheduledBetween(ctx, weekStart, weekEnd)
	if err != nil {
		return entities.WeekBoard{}, err
	}
	backlog, err := u.ListBacklog(ctx)
	if err != nil {
		return entities.WeekBoard{}, err
	}

	days := scheduling.WeekDays(weekStart, u.loc)
	board := entities.WeekBoard{
		WeekStart: weekStart,
		Days:      days,
		Today:     today,
		Mechanics: make([]entities.MechanicWeek, 0, len(mechanics)),
		Backlog:   backlog,
	}
	for _, m := range mechanics {
		board.Mechanics = append(board.Mechanics, scheduling.BuildMechanicWeek(m, days, orders, u.loc))
	}
	u.log.Debug("week board built",
		zap.Time("week_start", weekStart),
		zap.Int("mechanics", len(mechanics)),
		zap.Int("scheduled", len(orders)),
		zap.Int("backlog", len(backlog)),
	)

	// A rebuild that read storage before a concurrent schedule invalidation can
	// write its older board here; it lives at most one cache TTL.
	if u.cache != nil {
		if err := u.cache.Set(ctx, board); err != nil {
			u.log.Warn("board cache write failed", zap.Time("week_start", weekStart), zap.Error(err))
		}
	}
	return board, nil
}

func (u *ScheduleUseCase) ListBacklog(ctx context.Context) ([]entities.RankedWorkOrder, error) {
	orders, err := u.workOrders.ListUnscheduled(ctx)
	if err != nil {
		return nil, err
	}

	customers := map[string]entities.Customer{}
	if ids := customerIDs(orders); len(ids) > 0 && u.customers != nil {
		customers, err = u.customers.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}
	return scheduling.RankBacklog(orders, customers), nil
}

func customerIDs(orders []entities.WorkOrder) []string {
	seen := map[string]struct{}{}
	ids := []string{}
	for _, wo := range orders {
		if wo.CustomerID == "" {
			continue
		}
		if _, ok := seen[wo.CustomerID]; ok {
			continue
		}
		seen[wo.CustomerID] = struct{}{}
		ids = append(ids, wo.CustomerID)
	}
	sort.Strings(ids)
	return ids
}

func (u *ScheduleUseCase) loadMechanic(ctx context.Context, mechanicID string) (entities.Mechanic, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}
	m, err := u.mechanics.GetByID(ctx, mechanicID)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if m.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	return m, nil
}

func (u *ScheduleUseCase) GetMechanicDay(ctx context.Context, mechanicID string, day time.Time) (entities.DayLoad, error) {
	m, err := u.loadMechanic(ctx, mechanicID)
	if err != nil {
		return entities.DayLoad{}, err
	}
	start, end := scheduling.DayBounds(u.anchorOrToday(day), u.loc)
	orders, err := u.workOrders.ListScheduledBetween(ctx, start, end)
	if err != nil {
		return entities.DayLoad{}, err
	}
	return scheduling.AggregateDay(m, start, orders, u.loc), nil
}

func (u *ScheduleUseCase) ListWeekOrdersForMechanic(ctx context.Context, mechanicID string, anchor time.Time) (entities.Mechanic, []entities.WorkOrder, error) {
	m, err := u.loadMechanic(ctx, mechanicID)
	if err != nil {
		return entities.Mechanic{}, nil, err
	}
	from, to := scheduling.WeekBounds(u.anchorOrToday(anchor), u.loc)
	orders, err := u.workOrders.ListScheduledBetween(ctx, from, to)
	if err != nil {
		return entities.Mechanic{}, nil, err
	}
	mine := make([]entities.WorkOrder, 0, len(orders))
	for _, wo := range orders {
		if wo.AssignedMechanicID == m.ID {
			mine = append(mine, wo)
		}
	}
	return m, mine, nil
}

// ScheduleWorkOrder validates the command, then issues exactly one schedule
// update. Storage errors come back as ScheduleOutcomeFailed and are never
// swallowed.
func (u *ScheduleUseCase) ScheduleWorkOrder(ctx context.Context, cmd entities.ScheduleCommand) entities.ScheduleResult {
	cmd.WorkOrderID = strings.TrimSpace(cmd.WorkOrderID)
	cmd.MechanicID = strings.TrimSpace(cmd.MechanicID)

	if err := validateScheduleCommand(cmd); err != nil {
		return rejected(err)
	}

	wo, err := u.workOrders.GetByID(ctx, cmd.WorkOrderID)
	if err != nil {
		u.log.Error("load work order failed", zap.String("work_order_id", cmd.WorkOrderID), zap.Error(err))
		return entities.ScheduleResult{Outcome: entities.ScheduleOutcomeFailed, Err: err}
	}
	if wo.ID == "" {
		return rejected(ErrWorkOrderNotFound)
	}

	mech, err := u.loadMechanic(ctx, cmd.MechanicID)
	if err != nil {
		if errors.Is(err, ErrMechanicNotFound) {
			return rejected(err)
		}
		u.log.Error("load mechanic failed", zap.String("mechanic_id", cmd.MechanicID), zap.Error(err))
		return entities.ScheduleResult{Outcome: entities.ScheduleOutcomeFailed, Err: err}
	}
	if !mech.Active {
		return rejected(ErrMechanicInactive)
	}

	// Older records can carry a declared duration no job could fill.
	if hours, ok := scheduling.ResolveDuration(cmd.DurationHours, wo); ok && !scheduling.ValidHours(hours) {
		return rejected(ErrInvalidDuration)
	}

	upd := scheduling.PlanSchedule(cmd, wo)
	updated, err := u.workOrders.UpdateSchedule(ctx, wo.ID, upd)
	if err != nil {
		u.log.Error("schedule update failed",
			zap.String("work_order_id", wo.ID),
			zap.String("mechanic_id", mech.ID),
			zap.Time("start", upd.Start),
			zap.Error(err),
		)
		return entities.ScheduleResult{
			Outcome: entities.ScheduleOutcomeFailed,
			Err:     fmt.Errorf("%w: %w", ErrSchedulePersistFailed, err),
		}
	}
	if updated.ID == "" {
		return rejected(ErrWorkOrderNotFound)
	}

	u.log.Info("work order scheduled",
		zap.String("work_order_id", updated.ID),
		zap.String("mechanic_id", mech.ID),
		zap.Time("start", upd.Start),
		zap.Bool("has_end", upd.End != nil),
	)
	u.afterSchedule(ctx, wo, updated)
	return entities.ScheduleResult{Outcome: entities.ScheduleOutcomeScheduled, WorkOrder: updated}
}

func validateScheduleCommand(cmd entities.ScheduleCommand) error {
	if cmd.WorkOrderID == "" {
		return ErrInvalidWorkOrderID
	}
	if cmd.MechanicID == "" {
		return ErrInvalidMechanicID
	}
	if cmd.Start.IsZero() {
		return ErrMissingScheduleStart
	}
	if cmd.DurationHours != nil && !scheduling.ValidHours(*cmd.DurationHours) {
		return ErrInvalidDuration
	}
	return nil
}

func rejected(err error) entities.ScheduleResult {
	return entities.ScheduleResult{Outcome: entities.ScheduleOutcomeRejected, Err: err}
}

// afterSchedule refreshes the cached boards and announces the change. Both are
// best effort.
func (u *ScheduleUseCase) afterSchedule(ctx context.Context, before, after entities.WorkOrder) {
	if u.cache != nil {
		var err error
		if before.ScheduledStart == nil {
			// The job left the backlog, which every cached board embeds.
			err = u.cache.InvalidateAll(ctx)
		} else {
			weeks := []time.Time{scheduling.StartOfWeek(*before.ScheduledStart, u.loc)}
			if after.ScheduledStart != nil {
				next := scheduling.StartOfWeek(*after.ScheduledStart, u.loc)
				if !next.Equal(weeks[0]) {
					weeks = append(weeks, next)
				}
			}
			err = u.cache.Invalidate(ctx, weeks...)
		}
		if err != nil {
			u.log.Warn("board cache invalidate failed", zap.String("work_order_id", after.ID), zap.Error(err))
		}
	}

	if u.events != nil && after.ScheduledStart != nil {
		evt := entities.ScheduleEvent{
			WorkOrderID:    after.ID,
			JobNumber:      after.JobNumber,
			MechanicID:     after.AssignedMechanicID,
			ScheduledStart: *after.ScheduledStart,
			ScheduledEnd:   after.ScheduledEnd,
			OccurredAt:     u.clock.Now(),
		}
		if err := u.events.PublishScheduled(ctx, evt); err != nil {
			u.log.Warn("schedule event publish failed", zap.String("work_order_id", after.ID), zap.Error(err))
		}
	}
}
