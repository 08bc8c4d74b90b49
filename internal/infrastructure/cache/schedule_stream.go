package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase/interfaces"
)

type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// ScheduleStream appends schedule changes to a capped Redis stream that
// dashboard clients tail instead of polling.
type ScheduleStream struct {
	rdb    streamAdder
	stream string
	maxLen int64
}

var _ interfaces.IScheduleEventPublisher = (*ScheduleStream)(nil)

func NewScheduleStream(rdb streamAdder, stream string, maxLen int64) *ScheduleStream {
	if stream == "" {
		stream = "workshop.schedule"
	}
	return &ScheduleStream{rdb: rdb, stream: stream, maxLen: maxLen}
}

func (s *ScheduleStream) PublishScheduled(ctx context.Context, evt entities.ScheduleEvent) error {
	end := ""
	if evt.ScheduledEnd != nil {
		end = evt.ScheduledEnd.UTC().Format(time.RFC3339Nano)
	}

	err := s.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: s.maxLen > 0,
		Values: map[string]interface{}{
			"type":            "work_order.scheduled",
			"work_order_id":   evt.WorkOrderID,
			"job_number":      evt.JobNumber,
			"mechanic_id":     evt.MechanicID,
			"scheduled_start": evt.ScheduledStart.UTC().Format(time.RFC3339Nano),
			"scheduled_end":   end,
			"occurred_at":     evt.OccurredAt.UTC().Format(time.RFC3339Nano),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publish schedule event: %w", err)
	}
	return nil
}
