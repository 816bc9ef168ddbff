// Package cache caches note query results in Redis.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

const keyList = "notes:list"

// NoteCache caches the joined note list with a TTL; every write path calls
// InvalidateAll.
type NoteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewNoteCache returns a new NoteCache.
func NewNoteCache(rdb *redis.Client, ttl time.Duration) *NoteCache {
	return &NoteCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list or nil on miss.
func (c *NoteCache) GetList(ctx context.Context) ([]model.Note, error) {
	b, err := c.rdb.Get(ctx, keyList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []model.Note
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the list in cache.
func (c *NoteCache) SetList(ctx context.Context, list []model.Note) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyList, b, c.ttl).Err()
}

// InvalidateAll removes the cached list (cache invalidation on write).
func (c *NoteCache) InvalidateAll(ctx context.Context) error {
	return c.rdb.Del(ctx, keyList).Err()
}
