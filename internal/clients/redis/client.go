package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ialynk-server/internal/config"
	"ialynk-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

var ErrNotInitialized = errors.New("redis client not initialized")

// Nil is returned by Get when the key does not exist.
var Nil = redis.Nil

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. It returns nil, nil when Redis is disabled.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	ctx := context.Background()
	if !cfg.Enabled {
		logger.Info(ctx, "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Test connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "addr", Value: cfg.Addr},
		observability.Field{Key: "db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return NewFromRedis(client, logger), nil
}

// NewFromRedis wraps an existing go-redis client.
func NewFromRedis(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// SetNX sets key only when it does not exist and reports whether it was set.
func (c *Client) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	if c == nil || c.client == nil {
		return false, ErrNotInitialized
	}
	return c.client.SetNX(ctx, key, value, ttl).Result()
}

// IncrWindow increments the counter under key and starts its expiry on the first hit of a
// window. It returns the new count and the time left before the window resets.
func (c *Client) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if c == nil || c.client == nil {
		return 0, 0, ErrNotInitialized
	}
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}
	return incr.Val(), ttl.Val(), nil
}

// Set stores value under key with the given expiration
func (c *Client) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return ErrNotInitialized
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Get returns the value under key, or Nil when absent
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	if c == nil || c.client == nil {
		return "", ErrNotInitialized
	}
	return c.client.Get(ctx, key).Result()
}

// Del deletes keys
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil {
		return ErrNotInitialized
	}
	return c.client.Del(ctx, keys...).Err()
}

// Publish sends payload on a pub/sub channel
func (c *Client) Publish(ctx context.Context, channel string, payload []byte) error {
	if c == nil || c.client == nil {
		return ErrNotInitialized
	}
	if err := c.client.Publish(ctx, channel, payload).Err(); err != nil {
		c.logger.Error(ctx, "failed to publish to redis channel", err)
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}
	return nil
}

// Subscribe streams payloads published on channel until ctx is done.
// The returned channel is closed when the subscription ends.
func (c *Client) Subscribe(ctx context.Context, channel string) (<-chan string, error) {
	if c == nil || c.client == nil {
		return nil, ErrNotInitialized
	}
	pubsub := c.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	out := make(chan string)
	go func() {
		defer close(out)
		defer pubsub.Close()
		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
