package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// StatsCache counts submission outcomes per dealer, keyed by outcome
// code. Counters are best-effort observability; callers ignore errors.
type StatsCache interface {
	IncrOutcome(ctx context.Context, dealerID, code string) error
	GetCounts(ctx context.Context, dealerID string) (map[string]int64, error)
}

type statsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
	}
}

func (c *statsCache) key(dealerID string) string {
	return fmt.Sprintf("dealer:%s:outcomes", dealerID)
}

func (c *statsCache) IncrOutcome(ctx context.Context, dealerID, code string) error {
	return c.client.HIncrBy(ctx, c.key(dealerID), code, 1).Err()
}

func (c *statsCache) GetCounts(ctx context.Context, dealerID string) (map[string]int64, error) {
	raw, err := c.client.HGetAll(ctx, c.key(dealerID)).Result()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(raw))
	for code, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		counts[code] = n
	}
	return counts, nil
}
