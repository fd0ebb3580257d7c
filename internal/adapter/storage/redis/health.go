package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const healthCheckKey = "health:check"

// HealthCheck reports Redis healthy only when it accepts writes: account
// locks and the submission cache cannot work against a read-only replica
// even though it still answers PING.
type HealthCheck struct {
	client *goredis.Client
}

func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.client.Set(ctx, healthCheckKey, "1", time.Second).Err(); err != nil {
		return fmt.Errorf("redis not writable: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "redis"
}
