package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"socialnet/internal/apperror"
	"socialnet/internal/config"
)

// Client wraps the shared redis connection. It is created once at startup
// and closed on shutdown.
type Client struct {
	rdb *redis.Client
}

func NewClient(cfg *config.Config) (*Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// NotificationKey builds the per-recipient list key for cached notifications.
func NotificationKey(userID string) string {
	return "notification:" + userID
}

// AddToList appends the JSON-serialized value to the list stored at key and
// resets the key expiry to ttl, overwriting any previous expiry. Both commands
// run in one pipeline round-trip.
func (c *Client) AddToList(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	pipe := c.rdb.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperror.Unavailable("redis", err)
	}
	return nil
}

// ListRange returns the raw serialized entries stored at key, oldest first.
// A missing key yields an empty slice, not an error.
func (c *Client) ListRange(ctx context.Context, key string) ([]string, error) {
	values, err := c.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, apperror.Unavailable("redis", err)
	}
	return values, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
