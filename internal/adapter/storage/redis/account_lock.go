package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only when the caller still owns it.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// AccountLock implements ports.AccountLocker with SET NX and an owner token.
type AccountLock struct {
	client *goredis.Client
	prefix string
}

// NewAccountLock creates a Redis-backed per-account lock.
func NewAccountLock(client *goredis.Client) *AccountLock {
	return &AccountLock{
		client: client,
		prefix: "lock:account:",
	}
}

// Acquire tries once to take the lock for address. It returns the owner token
// required by Release, or ok=false when another flow holds the lock.
func (l *AccountLock) Acquire(ctx context.Context, address string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.prefix+address, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("redis lock acquire: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release drops the lock if token still owns it. An expired or foreign lock is left alone.
func (l *AccountLock) Release(ctx context.Context, address, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.prefix + address}, token).Err(); err != nil {
		return fmt.Errorf("redis lock release: %w", err)
	}
	return nil
}
