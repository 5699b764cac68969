package middleware

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

// Limiter counts hits per identifier in a sliding window.
type Limiter interface {
	Allow(ctx context.Context, identifier string) (allowed bool, remaining int, reset time.Time, err error)
	Limit() int
}

// RedisLimiter keeps one sorted set of hit timestamps per identifier.
type RedisLimiter struct {
	redis       *redis.Client
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

func NewRedisLimiter(client *redis.Client, maxRequests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{redis: client, maxRequests: maxRequests, window: window, now: time.Now}
}

func (rl *RedisLimiter) Limit() int {
	return rl.maxRequests
}

func (rl *RedisLimiter) Allow(ctx context.Context, identifier string) (bool, int, time.Time, error) {
	key := fmt.Sprintf("ratelimit:login:%s", identifier)
	now := rl.now()
	windowStart := now.Add(-rl.window)

	pipe := rl.redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	pipe.Expire(ctx, key, rl.window+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, fmt.Errorf("failed to count attempts: %w", err)
	}

	count := int(countCmd.Val())
	return count < rl.maxRequests, max(rl.maxRequests-count-1, 0), now.Add(rl.window), nil
}

// MemoryLimiter is the in-process fallback used without Redis.
type MemoryLimiter struct {
	mu          sync.Mutex
	hits        map[string][]time.Time
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

func NewMemoryLimiter(maxRequests int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{hits: map[string][]time.Time{}, maxRequests: maxRequests, window: window, now: time.Now}
}

func (ml *MemoryLimiter) Limit() int {
	return ml.maxRequests
}

func (ml *MemoryLimiter) Allow(_ context.Context, identifier string) (bool, int, time.Time, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	now := ml.now()
	windowStart := now.Add(-ml.window)

	recent := ml.hits[identifier][:0]
	for _, t := range ml.hits[identifier] {
		if t.After(windowStart) {
			recent = append(recent, t)
		}
	}
	count := len(recent)
	ml.hits[identifier] = append(recent, now)

	return count < ml.maxRequests, max(ml.maxRequests-count-1, 0), now.Add(ml.window), nil
}

// RateLimit guards a route per client IP. Limited requests are handed to
// onLimited, which renders the page the route would have shown. Limiter
// failures let the request through.
func RateLimit(l Limiter, onLimited fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := c.IP()

		allowed, remaining, reset, err := l.Allow(c.UserContext(), identifier)
		if err != nil {
			logger.Error(c.UserContext()).Err(err).Str("identifier", identifier).Msg("Rate limiter error")
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(l.Limit()))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			logger.Warn(c.UserContext()).
				Str("identifier", identifier).
				Int("limit", l.Limit()).
				Msg("Rate limit exceeded")
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(time.Until(reset).Round(time.Second).Seconds())))
			return onLimited(c)
		}
		return c.Next()
	}
}
