package query

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
)

// GetTaskQuery represents the query to get a task by id
type GetTaskQuery struct {
	ID string
}

// GetTaskHandler handles get task query
type GetTaskHandler struct {
	repo  domain.TaskRepository
	cache *querycache.Cache
}

// NewGetTaskHandler creates a new get task handler
func NewGetTaskHandler(repo domain.TaskRepository, cache *querycache.Cache) *GetTaskHandler {
	return &GetTaskHandler{repo: repo, cache: cache}
}

// Handle executes the get task query
func (h *GetTaskHandler) Handle(ctx context.Context, q GetTaskQuery) (*domain.Task, error) {
	key := querycache.Key(ctx, domain.CachePrefix, "id", q.ID)
	return querycache.Fetch(ctx, h.cache, key, func(ctx context.Context) (*domain.Task, error) {
		return h.repo.Get(ctx, q.ID)
	})
}
