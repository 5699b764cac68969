package query

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
	"github.com/Nawaf-Almansour/prep-manger/internal/user/domain"
)

// ListUsersQuery lists every user, or only those with Role when set.
type ListUsersQuery struct {
	Role string
}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	repo  domain.UserRepository
	cache *querycache.Cache
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository, cache *querycache.Cache) *ListUsersHandler {
	return &ListUsersHandler{repo: repo, cache: cache}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(ctx context.Context, q ListUsersQuery) ([]domain.User, error) {
	if q.Role != "" {
		key := querycache.Key(ctx, domain.CachePrefix, "role", q.Role)
		return querycache.Fetch(ctx, h.cache, key, func(ctx context.Context) ([]domain.User, error) {
			return h.repo.ListByRole(ctx, q.Role)
		})
	}
	return querycache.Fetch(ctx, h.cache, querycache.Key(ctx, domain.CachePrefix), h.repo.List)
}
