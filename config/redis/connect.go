package redis

import (
	"context"
	"fmt"

	"salesreport-srv/config"
	"salesreport-srv/pkg/redis"
)

// Connect creates a Redis client and verifies it with a ping. The handle is
// passed explicitly to the repositories that need it.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	client, err := redis.NewRedis(redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
