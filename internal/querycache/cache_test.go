package querycache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/metrics"
)

type item struct {
	Name string `json:"name"`
}

func newCache(ttl time.Duration) (*Cache, *MemoryBackend) {
	backend := NewMemoryBackend()
	return New(backend, ttl, metrics.New(prometheus.NewRegistry())), backend
}

func TestFetchCachesResult(t *testing.T) {
	cache, _ := newCache(time.Minute)
	ctx := apiclient.WithToken(context.Background(), "token-a")
	calls := 0
	load := func(context.Context) ([]item, error) {
		calls++
		return []item{{Name: "rice"}}, nil
	}

	first, err := Fetch(ctx, cache, Key(ctx, "inventory", "list"), load)
	require.NoError(t, err)
	second, err := Fetch(ctx, cache, Key(ctx, "inventory", "list"), load)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestFetchDoesNotCacheErrors(t *testing.T) {
	cache, backend := newCache(time.Minute)
	ctx := context.Background()

	_, err := Fetch(ctx, cache, Key(ctx, "tasks"), func(context.Context) (int, error) {
		return 0, errors.New("boom")
	})

	assert.Error(t, err)
	assert.Equal(t, 0, backend.Len())
}

func TestKeysAreScopedByToken(t *testing.T) {
	a := apiclient.WithToken(context.Background(), "token-a")
	b := apiclient.WithToken(context.Background(), "token-b")

	assert.NotEqual(t, Key(a, "tasks", "mine"), Key(b, "tasks", "mine"))
	assert.Equal(t, "qc:anon:tasks:mine", Key(context.Background(), "tasks", "mine"))
}

func TestInvalidateByPrefix(t *testing.T) {
	cache, backend := newCache(time.Minute)
	a := apiclient.WithToken(context.Background(), "token-a")
	b := apiclient.WithToken(context.Background(), "token-b")

	for _, key := range []string{
		Key(a, "tasks"),
		Key(a, "tasks", "today"),
		Key(b, "tasks", "mine"),
		Key(a, "tasksummary"),
		Key(a, "inventory", "list"),
	} {
		require.NoError(t, backend.Set(context.Background(), key, []byte(`1`), time.Minute))
	}

	cache.Invalidate(context.Background(), "tasks")

	assert.Equal(t, 2, backend.Len())
	_, ok, _ := backend.Get(context.Background(), Key(a, "inventory", "list"))
	assert.True(t, ok)
	_, ok, _ = backend.Get(context.Background(), Key(a, "tasksummary"))
	assert.True(t, ok)
}

func TestMemoryBackendExpiry(t *testing.T) {
	backend := NewMemoryBackend()
	now := time.Now()
	backend.now = func() time.Time { return now }

	require.NoError(t, backend.Set(context.Background(), "qc:anon:x", []byte("1"), time.Second))
	_, ok, _ := backend.Get(context.Background(), "qc:anon:x")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok, _ = backend.Get(context.Background(), "qc:anon:x")
	assert.False(t, ok)
}

func TestNilCacheLoadsDirectly(t *testing.T) {
	var cache *Cache
	v, err := Fetch(context.Background(), cache, "k", func(context.Context) (string, error) { return "v", nil })
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	assert.NotPanics(t, func() { cache.Invalidate(context.Background(), "tasks") })
}
