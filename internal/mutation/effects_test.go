package mutation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
	"github.com/Nawaf-Almansour/prep-manger/kafka"
)

type capturePublisher struct {
	events []kafka.ActivityEvent
}

func (c *capturePublisher) PublishActivity(_ context.Context, e kafka.ActivityEvent) error {
	c.events = append(c.events, e)
	return nil
}

func TestCommitted(t *testing.T) {
	backend := querycache.NewMemoryBackend()
	cache := querycache.New(backend, time.Minute, nil)
	pub := &capturePublisher{}
	effects := NewEffects(cache, pub)
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, querycache.Key(ctx, "tasks", "today"), []byte("[]"), time.Minute))
	require.NoError(t, backend.Set(ctx, querycache.Key(ctx, "inventory", "list"), []byte("[]"), time.Minute))
	require.NoError(t, backend.Set(ctx, querycache.Key(ctx, "users"), []byte("[]"), time.Minute))

	effects.Committed(ctx, "task.usage_recorded", "tasks", "t1", "tasks", "inventory")

	assert.Equal(t, 1, backend.Len())
	require.Len(t, pub.events, 1)
	assert.Equal(t, "task.usage_recorded", pub.events[0].EventType)
	assert.Equal(t, "t1", pub.events[0].ResourceID)
}

func TestNilEffects(t *testing.T) {
	var e *Effects
	assert.NotPanics(t, func() { e.Committed(context.Background(), "x", "y", "z", "tasks") })
	assert.Nil(t, e.Cache())
}

func TestPrefixesFor(t *testing.T) {
	tests := []struct {
		resource string
		want     []string
	}{
		{"task", []string{"tasks"}},
		{"Products", []string{"products"}},
		{"item", []string{"inventory"}},
		{"user", []string{"users", "auth"}},
		{"something-new", allPrefixes},
	}
	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			assert.Equal(t, tt.want, PrefixesFor(tt.resource))
		})
	}
}

func TestOnChange(t *testing.T) {
	backend := querycache.NewMemoryBackend()
	cache := querycache.New(backend, time.Minute, nil)
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, querycache.Key(ctx, "tasks", "all"), []byte("[]"), time.Minute))
	require.NoError(t, backend.Set(ctx, querycache.Key(ctx, "products", "list"), []byte("[]"), time.Minute))

	err := OnChange(cache)(ctx, kafka.ResourceChangedEvent{Resource: "task", ResourceID: "t1"})

	require.NoError(t, err)
	assert.Equal(t, 1, backend.Len())
}
