package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/akileinonen/maintenance-wizard/internal/domain"
	"github.com/akileinonen/maintenance-wizard/internal/timeclock"

	"github.com/redis/go-redis/v9"
)

const (
	keyList     = "tasks:list:"
	keyOverview = "tasks:overview:"
)

// TaskCache caches per-company task lists and overview stats in Redis.
// Both are invalidated together on any task or time-entry write.
type TaskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTaskCache returns a new TaskCache.
func NewTaskCache(rdb *redis.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{rdb: rdb, ttl: ttl}
}

func companyKey(prefix string, companyID int64) string {
	return prefix + strconv.FormatInt(companyID, 10)
}

// GetList returns the cached task list or nil on miss.
func (c *TaskCache) GetList(ctx context.Context, companyID int64) ([]dom.Task, error) {
	b, err := c.rdb.Get(ctx, companyKey(keyList, companyID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Task
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the task list.
func (c *TaskCache) SetList(ctx context.Context, companyID int64, list []dom.Task) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, companyKey(keyList, companyID), b, c.ttl).Err()
}

// GetOverview returns the cached overview stats or nil on miss.
func (c *TaskCache) GetOverview(ctx context.Context, companyID int64) (*timeclock.Stats, error) {
	b, err := c.rdb.Get(ctx, companyKey(keyOverview, companyID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s timeclock.Stats
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SetOverview stores the overview stats.
func (c *TaskCache) SetOverview(ctx context.Context, companyID int64, s timeclock.Stats) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, companyKey(keyOverview, companyID), b, c.ttl).Err()
}

// Invalidate drops the company's cached list and overview (called on writes).
func (c *TaskCache) Invalidate(ctx context.Context, companyID int64) error {
	return c.rdb.Del(ctx,
		companyKey(keyList, companyID),
		companyKey(keyOverview, companyID),
	).Err()
}
