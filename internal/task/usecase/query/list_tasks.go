package query

import (
	"context"
	"fmt"

	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
)

// Scope selects which task list endpoint is read.
type Scope int

const (
	ScopeAll Scope = iota
	ScopeToday
	ScopeMine
	ScopeStatus
	ScopeProduct
)

// ListTasksQuery lists tasks. Status and ProductID apply to their scopes only.
type ListTasksQuery struct {
	Scope     Scope
	Status    string
	ProductID string
}

// ListTasksHandler handles list tasks query
type ListTasksHandler struct {
	repo  domain.TaskRepository
	cache *querycache.Cache
}

// NewListTasksHandler creates a new list tasks handler
func NewListTasksHandler(repo domain.TaskRepository, cache *querycache.Cache) *ListTasksHandler {
	return &ListTasksHandler{repo: repo, cache: cache}
}

// Handle executes the list tasks query
func (h *ListTasksHandler) Handle(ctx context.Context, q ListTasksQuery) ([]domain.Task, error) {
	var (
		segments []string
		load     func(context.Context) ([]domain.Task, error)
	)
	switch q.Scope {
	case ScopeAll:
		segments, load = []string{"all"}, h.repo.All
	case ScopeToday:
		segments, load = []string{"today"}, h.repo.Today
	case ScopeMine:
		segments, load = []string{"mine"}, h.repo.Mine
	case ScopeStatus:
		segments = []string{"status", q.Status}
		load = func(ctx context.Context) ([]domain.Task, error) { return h.repo.ByStatus(ctx, q.Status) }
	case ScopeProduct:
		segments = []string{"product", q.ProductID}
		load = func(ctx context.Context) ([]domain.Task, error) { return h.repo.ByProduct(ctx, q.ProductID) }
	default:
		return nil, fmt.Errorf("unknown task scope %d", q.Scope)
	}

	key := querycache.Key(ctx, append([]string{domain.CachePrefix}, segments...)...)
	return querycache.Fetch(ctx, h.cache, key, load)
}
