package kafka

import (
	"context"
	"time"
)

// ActivityEvent records a mutation performed through the dashboard.
type ActivityEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	ActorRole  string    `json:"actor_role,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ResourceChangedEvent is emitted by the API when data changes outside the
// dashboard, e.g. a task completed from the mobile app.
type ResourceChangedEvent struct {
	EventID    string    `json:"event_id"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id,omitempty"`
	Action     string    `json:"action,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeResourceChanged = "resource.changed"
)

// Actor identifies who triggered an activity.
type Actor struct {
	ID   string
	Role string
}

type actorKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) Actor {
	actor, _ := ctx.Value(actorKey{}).(Actor)
	return actor
}
