// Package mutation applies the side effects shared by every successful write:
// cache invalidation and an activity event.
package mutation

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
	"github.com/Nawaf-Almansour/prep-manger/kafka"
)

type Effects struct {
	cache    *querycache.Cache
	activity kafka.ActivityPublisher
}

func NewEffects(cache *querycache.Cache, activity kafka.ActivityPublisher) *Effects {
	return &Effects{cache: cache, activity: activity}
}

// Committed invalidates the given cache prefixes and records eventType.
// A nil receiver does nothing.
func (e *Effects) Committed(ctx context.Context, eventType, resource, resourceID string, invalidate ...string) {
	if e == nil {
		return
	}
	e.cache.Invalidate(ctx, invalidate...)
	kafka.Record(ctx, e.activity, eventType, resource, resourceID)
}

// Cache exposes the query cache for read-side handlers built alongside.
func (e *Effects) Cache() *querycache.Cache {
	if e == nil {
		return nil
	}
	return e.cache
}
