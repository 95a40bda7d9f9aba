package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	sharedConfig "fieldserve/internal/shared/config"
	"fieldserve/internal/shared/logger"
)

const (
	unreadKeyPrefix = "notifications:unread:"
	unreadTTL       = 10 * time.Minute
)

// NewRedisClient builds a Redis client from config and verifies connectivity.
func NewRedisClient(cfg *sharedConfig.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// RedisUnreadCounter caches per-user unread notification counts so the
// badge endpoint does not hit the database on every poll. Cache misses
// and Redis errors both report a miss; callers fall back to the database.
type RedisUnreadCounter struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisUnreadCounter(client *redis.Client, logger logger.Interface) *RedisUnreadCounter {
	return &RedisUnreadCounter{
		client: client,
		logger: logger,
	}
}

func (c *RedisUnreadCounter) key(userID uint) string {
	return fmt.Sprintf("%s%d", unreadKeyPrefix, userID)
}

func (c *RedisUnreadCounter) Get(ctx context.Context, userID uint) (int64, bool) {
	count, err := c.client.Get(ctx, c.key(userID)).Int64()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("failed to read unread count from cache", "user_id", userID, "error", err)
		}
		return 0, false
	}
	return count, true
}

func (c *RedisUnreadCounter) Set(ctx context.Context, userID uint, count int64) {
	if err := c.client.Set(ctx, c.key(userID), count, unreadTTL).Err(); err != nil {
		c.logger.Warnw("failed to cache unread count", "user_id", userID, "error", err)
	}
}

func (c *RedisUnreadCounter) Invalidate(ctx context.Context, userID uint) {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		c.logger.Warnw("failed to invalidate unread count", "user_id", userID, "error", err)
	}
}
