package query

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
	"github.com/Nawaf-Almansour/prep-manger/internal/user/domain"
)

// GetUserQuery represents the query to get a user by id
type GetUserQuery struct {
	ID string
}

// GetUserHandler handles get user query
type GetUserHandler struct {
	repo  domain.UserRepository
	cache *querycache.Cache
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository, cache *querycache.Cache) *GetUserHandler {
	return &GetUserHandler{repo: repo, cache: cache}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(ctx context.Context, q GetUserQuery) (*domain.User, error) {
	key := querycache.Key(ctx, domain.CachePrefix, "id", q.ID)
	return querycache.Fetch(ctx, h.cache, key, func(ctx context.Context) (*domain.User, error) {
		return h.repo.Get(ctx, q.ID)
	})
}
