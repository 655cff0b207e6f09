package cache

import (
	"city-route-service/internal/platform/obs"
	"city-route-service/internal/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDistanceCache stores one hash per origin: field = destination ID,
// value = JSON-encoded ports.DistanceResult.
//
// Keys are namespaced so that a different city map never reads another
// map's distances.
type RedisDistanceCache struct {
	Client    *redis.Client
	Namespace string
	TTL       time.Duration
}

func NewRedisDistanceCache(client *redis.Client, namespace string, ttl time.Duration) *RedisDistanceCache {
	return &RedisDistanceCache{Client: client, Namespace: namespace, TTL: ttl}
}

// NewRedisClient parses a redis:// URL and verifies the server answers.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis client: parse url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis client: ping: %w", err)
	}

	return client, nil
}

func (c *RedisDistanceCache) key(origin int) string {
	return fmt.Sprintf("%s:dist:%d", c.Namespace, origin)
}

// Fetch cached distances for one origin and multiple destinations.
func (c *RedisDistanceCache) GetMany(
	ctx context.Context,
	origin int,
	destinations []int,
) (_ map[int]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "distance.cache.GetMany")(&err)

	if c.Client == nil {
		return nil, errors.New("distance cache: redis client is nil")
	}

	if len(destinations) == 0 {
		return map[int]ports.DistanceResult{}, nil
	}

	seen := map[int]struct{}{}
	fields := make([]string, 0, len(destinations))
	for _, d := range destinations {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		fields = append(fields, strconv.Itoa(d))
	}

	vals, err := c.Client.HMGet(ctx, c.key(origin), fields...).Result()
	if err != nil {
		return nil, fmt.Errorf("get distance cache: hmget origin=%d: %w", origin, err)
	}

	out := make(map[int]ports.DistanceResult, len(fields))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		var r ports.DistanceResult
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("get distance cache: decode origin=%d dest=%s: %w", origin, fields[i], err)
		}

		dest, _ := strconv.Atoi(fields[i])
		out[dest] = r
	}

	return out, nil
}

// Store many cached distance results for a single origin.
func (c *RedisDistanceCache) PutMany(
	ctx context.Context,
	origin int,
	results map[int]ports.DistanceResult,
) (err error) {
	defer obs.Time(ctx, "distance.cache.PutMany")(&err)

	if c.Client == nil {
		return errors.New("distance cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	values := make([]any, 0, 2*len(results))
	for dest, r := range results {
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("insert distance cache dest=%d: %w", dest, err)
		}
		values = append(values, strconv.Itoa(dest), string(b))
	}

	key := c.key(origin)
	_, err = c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, values...)
		if c.TTL > 0 {
			pipe.Expire(ctx, key, c.TTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert distance cache origin=%d: %w", origin, err)
	}

	return nil
}
