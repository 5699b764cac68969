package query

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
)

// ListCategoriesQuery lists categories; ActiveOnly feeds form dropdowns.
type ListCategoriesQuery struct {
	ActiveOnly bool
}

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	repo  domain.CategoryRepository
	cache *querycache.Cache
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CategoryRepository, cache *querycache.Cache) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo, cache: cache}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context, q ListCategoriesQuery) ([]domain.Category, error) {
	scope := "all"
	if q.ActiveOnly {
		scope = "active"
	}
	key := querycache.Key(ctx, domain.CachePrefix, scope)
	return querycache.Fetch(ctx, h.cache, key, func(ctx context.Context) ([]domain.Category, error) {
		return h.repo.List(ctx, q.ActiveOnly)
	})
}
