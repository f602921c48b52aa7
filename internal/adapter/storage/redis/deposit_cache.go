package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DepositCache implements ports.DepositCache using Redis. It is the fast
// path for rejecting replayed deposit tx hashes; the database unique
// constraint stays authoritative, so cache misses are harmless.
type DepositCache struct {
	client *goredis.Client
	prefix string
}

// NewDepositCache creates a new Redis-backed deposit duplicate check.
func NewDepositCache(client *goredis.Client) *DepositCache {
	return &DepositCache{
		client: client,
		prefix: "deposit:tx:",
	}
}

// Seen reports whether the tx hash was recently recorded.
func (c *DepositCache) Seen(ctx context.Context, txHash string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+txHash).Result()
	if err != nil {
		return false, fmt.Errorf("redis deposit seen: %w", err)
	}
	return n > 0, nil
}

// MarkSeen records the tx hash with a TTL.
func (c *DepositCache) MarkSeen(ctx context.Context, txHash string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+txHash, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis deposit mark seen: %w", err)
	}
	return nil
}
