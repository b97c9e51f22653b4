package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"time4swim/backend/config"
)

// Client wraps the Redis connection. It serves two concerns: the JWT
// blacklist for logout, and the fire-and-forget lane-assignment channel
// coach-facing clients subscribe to for UI refresh.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and runs a ping health check.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── token blacklist ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken adds a JWT ID to the blacklist for the token's remaining TTL.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to blacklist
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted reports whether a JWT ID has been blacklisted.
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── lane assignment notifications ──

const lanesAssignedChannel = "lanes-assigned"

type lanesAssignedMessage struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"ts"`
}

// PublishLanesAssigned notifies subscribed clients that the lane configuration
// of an event changed. Delivery is best-effort: a publish failure is logged
// and never surfaced to the caller.
func (c *Client) PublishLanesAssigned(ctx context.Context, eventID string) {
	payload, err := json.Marshal(lanesAssignedMessage{
		EventID:   eventID,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		c.logger.Warn("marshal lanes-assigned message failed", zap.Error(err))
		return
	}
	if err := c.rdb.Publish(ctx, lanesAssignedChannel, payload).Err(); err != nil {
		c.logger.Warn("publish lanes-assigned failed",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
	}
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
