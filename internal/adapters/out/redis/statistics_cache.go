// Package redis caches order statistics in Redis. The cache is also an event
// publisher: any committed order event drops the cached value, so readers see
// fresh counts after a write instead of waiting out the TTL.
//
// Invalidation bumps a generation key before deleting the value. Put is a
// compare-and-set on that key, so statistics computed before a write landed are
// discarded instead of being cached for a whole TTL.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

const (
	DefaultStatisticsKey = "icecream:orders:statistics"
	DefaultStatisticsTTL = 30 * time.Second
)

// KEYS[1] generation, KEYS[2] value; ARGV[1] expected generation, ARGV[2] value,
// ARGV[3] ttl in milliseconds.
const putIfGenerationScript = `
if (redis.call('GET', KEYS[1]) or '0') ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`

var (
	_ ports.StatisticsCache = (*StatisticsCache)(nil)
	_ ports.EventPublisher  = (*StatisticsCache)(nil)
)

// StatisticsCache stores order.Statistics as JSON under one key.
type StatisticsCache struct {
	client        redis.Cmdable
	key           string
	generationKey string
	ttl           time.Duration
}

// NewStatisticsCache uses DefaultStatisticsKey; a non-positive ttl means
// DefaultStatisticsTTL.
func NewStatisticsCache(client redis.Cmdable, ttl time.Duration) *StatisticsCache {
	if ttl <= 0 {
		ttl = DefaultStatisticsTTL
	}
	return &StatisticsCache{
		client:        client,
		key:           DefaultStatisticsKey,
		generationKey: GenerationKey(DefaultStatisticsKey),
		ttl:           ttl,
	}
}

func (c *StatisticsCache) Get(ctx context.Context) (order.Statistics, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return order.Statistics{}, false, nil
	}
	if err != nil {
		return order.Statistics{}, false, fmt.Errorf("read statistics cache: %w", err)
	}

	var stats order.Statistics
	if err = json.Unmarshal(data, &stats); err != nil {
		return order.Statistics{}, false, fmt.Errorf("decode statistics cache: %w", err)
	}
	return stats, true, nil
}

func (c *StatisticsCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, c.generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read statistics generation: %w", err)
	}
	return generation, nil
}

func (c *StatisticsCache) Put(ctx context.Context, generation int64, stats order.Statistics) (bool, error) {
	data, err := json.Marshal(stats)
	if err != nil {
		return false, err
	}

	stored, err := c.client.Eval(ctx, putIfGenerationScript,
		[]string{c.generationKey, c.key},
		strconv.FormatInt(generation, 10), string(data), c.ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("write statistics cache: %w", err)
	}
	return stored == 1, nil
}

// Invalidate advances the generation and drops the cached value.
func (c *StatisticsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.generationKey).Err(); err != nil {
		return fmt.Errorf("invalidate statistics cache: %w", err)
	}
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("invalidate statistics cache: %w", err)
	}
	return nil
}

// Publish invalidates the cache whenever at least one event is committed.
func (c *StatisticsCache) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}
	return c.Invalidate(ctx)
}

// GenerationKey names the counter guarding the value stored under key.
func GenerationKey(key string) string {
	return key + ":generation"
}

// Ping checks the connection.
func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	return nil
}
