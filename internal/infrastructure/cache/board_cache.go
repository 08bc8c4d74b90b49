package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase/interfaces"
)

const (
	boardKeyPrefix = "workshop:board:"
	scanBatch      = 100
)

// boardStore is the part of *redis.Client the board cache needs.
type boardStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// BoardCache keeps built week boards as JSON under one key per week start.
// Entries expire after ttl, which bounds how stale a board can get when an
// invalidation is lost.
type BoardCache struct {
	rdb boardStore
	ttl time.Duration
	loc *time.Location
}

var _ interfaces.IBoardCache = (*BoardCache)(nil)

func NewBoardCache(rdb boardStore, ttl time.Duration, loc *time.Location) *BoardCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if loc == nil {
		loc = time.Local
	}
	return &BoardCache{rdb: rdb, ttl: ttl, loc: loc}
}

func (c *BoardCache) key(weekStart time.Time) string {
	return boardKeyPrefix + weekStart.In(c.loc).Format("2006-01-02")
}

func (c *BoardCache) Get(ctx context.Context, weekStart time.Time) (entities.WeekBoard, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(weekStart)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.WeekBoard{}, false, nil
	}
	if err != nil {
		return entities.WeekBoard{}, false, fmt.Errorf("board cache get: %w", err)
	}

	var board entities.WeekBoard
	if err := json.Unmarshal(raw, &board); err != nil {
		// A corrupt entry is a miss; the rebuild overwrites it.
		return entities.WeekBoard{}, false, nil
	}
	return localize(board, c.loc), true, nil
}

func (c *BoardCache) Set(ctx context.Context, board entities.WeekBoard) error {
	raw, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("board cache encode: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key(board.WeekStart), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("board cache set: %w", err)
	}
	return nil
}

func (c *BoardCache) Invalidate(ctx context.Context, weekStarts ...time.Time) error {
	if len(weekStarts) == 0 {
		return nil
	}
	keys := make([]string, 0, len(weekStarts))
	for _, ws := range weekStarts {
		keys = append(keys, c.key(ws))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("board cache invalidate: %w", err)
	}
	return nil
}

func (c *BoardCache) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, boardKeyPrefix+"*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("board cache scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("board cache invalidate: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// localize moves decoded instants back into the workshop location; JSON keeps
// only the offset.
func localize(b entities.WeekBoard, loc *time.Location) entities.WeekBoard {
	b.WeekStart = b.WeekStart.In(loc)
	b.Today = b.Today.In(loc)
	for i := range b.Days {
		b.Days[i] = b.Days[i].In(loc)
	}
	for i := range b.Mechanics {
		for d := range b.Mechanics[i].Days {
			b.Mechanics[i].Days[d].Day = b.Mechanics[i].Days[d].Day.In(loc)
		}
	}
	return b
}
