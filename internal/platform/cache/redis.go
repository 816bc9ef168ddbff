package cache

import (
	"context"
	"fmt"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

// Open returns a ready Redis client. The caller owns it and is responsible
// for closing it on shutdown.
func Open(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis: %w", err)
	}
	return rdb, nil
}
