package interfaces

import (
	"context"
	"time"

	"moto_workshop/internal/domain/entities"
)

// IBoardCache stores built week boards keyed by week start.
// Get reports found=false on a miss; errors are for transport failures only.
// Every board embeds the backlog, so backlog changes use InvalidateAll.
type IBoardCache interface {
	Get(ctx context.Context, weekStart time.Time) (board entities.WeekBoard, found bool, err error)
	Set(ctx context.Context, board entities.WeekBoard) error
	Invalidate(ctx context.Context, weekStarts ...time.Time) error
	InvalidateAll(ctx context.Context) error
}

// IScheduleEventPublisher announces schedule changes to other dashboard clients.
type IScheduleEventPublisher interface {
	PublishScheduled(ctx context.Context, evt entities.ScheduleEvent) error
}
