package querycache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/metrics"
	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

const keyPrefix = "qc"

// Backend stores serialized query results.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// DeletePrefix removes, across every token scope, the keys whose
	// segments start with prefix.
	DeletePrefix(ctx context.Context, prefix string) (int, error)
	Ping(ctx context.Context) error
}

// Cache memoizes query results per bearer token. Mutations invalidate by
// resource prefix; nothing is locked across the fetch.
type Cache struct {
	backend Backend
	ttl     time.Duration
	metrics *metrics.Metrics
}

func New(backend Backend, ttl time.Duration, m *metrics.Metrics) *Cache {
	return &Cache{backend: backend, ttl: ttl, metrics: m}
}

// Key builds a cache key scoped to the token carried by ctx.
func Key(ctx context.Context, segments ...string) string {
	scope := "anon"
	if token := apiclient.TokenFromContext(ctx); token != "" {
		sum := sha256.Sum256([]byte(token))
		scope = hex.EncodeToString(sum[:8])
	}
	return keyPrefix + ":" + scope + ":" + strings.Join(segments, ":")
}

// Fetch returns the cached value under key or calls load and stores its result.
// A nil cache always calls load.
func Fetch[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil || c.ttl <= 0 {
		return load(ctx)
	}

	data, ok, err := c.backend.Get(ctx, key)
	switch {
	case err != nil:
		c.metrics.CacheEvent("error")
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Cache read failed")
	case ok:
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			c.metrics.CacheEvent("hit")
			return v, nil
		}
	}

	c.metrics.CacheEvent("miss")
	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if data, err := json.Marshal(v); err == nil {
		if err := c.backend.Set(ctx, key, data, c.ttl); err != nil {
			logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache query result")
		}
	}
	return v, nil
}

// Invalidate drops every entry under each prefix for all users.
func (c *Cache) Invalidate(ctx context.Context, prefixes ...string) {
	if c == nil {
		return
	}
	for _, prefix := range prefixes {
		n, err := c.backend.DeletePrefix(ctx, prefix)
		if err != nil {
			c.metrics.CacheEvent("error")
			logger.Warn(ctx).Err(err).Str("prefix", prefix).Msg("Cache invalidation failed")
			continue
		}
		c.metrics.CacheEvent("invalidate")
		logger.Debug(ctx).Int("count", n).Str("prefix", prefix).Msg("Cache invalidated")
	}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.backend.Ping(ctx)
}

// matchesPrefix reports whether key (qc:<scope>:<rest>) falls under prefix.
func matchesPrefix(key, prefix string) bool {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) != 3 || parts[0] != keyPrefix {
		return false
	}
	rest := parts[2]
	return rest == prefix || strings.HasPrefix(rest, prefix+":")
}
