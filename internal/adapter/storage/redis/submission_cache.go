package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stellar-wallet-core/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SubmissionCache implements ports.SubmissionCache using Redis. Entries are keyed
// by envelope hash so a re-submit of the same signed envelope short-circuits.
type SubmissionCache struct {
	client *goredis.Client
	prefix string
}

// NewSubmissionCache creates a new Redis-backed submission cache.
func NewSubmissionCache(client *goredis.Client) *SubmissionCache {
	return &SubmissionCache{
		client: client,
		prefix: "submission:",
	}
}

// Get returns nil, nil if no result is cached for hash.
func (c *SubmissionCache) Get(ctx context.Context, hash string) (*domain.SubmitResult, error) {
	val, err := c.client.Get(ctx, c.prefix+hash).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis submission get: %w", err)
	}

	var result domain.SubmitResult
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, fmt.Errorf("decoding cached submission: %w", err)
	}
	return &result, nil
}

// Set stores a definitive result with TTL.
func (c *SubmissionCache) Set(ctx context.Context, result *domain.SubmitResult, ttl time.Duration) error {
	val, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding submission: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+result.Hash, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis submission set: %w", err)
	}
	return nil
}
