package query

import (
	"context"
	"strconv"

	"github.com/Nawaf-Almansour/prep-manger/internal/product/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Filter domain.ListFilter
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo  domain.ProductRepository
	cache *querycache.Cache
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository, cache *querycache.Cache) *ListProductsHandler {
	return &ListProductsHandler{repo: repo, cache: cache}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.Product, error) {
	active := "any"
	if q.Filter.IsActive != nil {
		active = strconv.FormatBool(*q.Filter.IsActive)
	}
	key := querycache.Key(ctx, domain.CachePrefix, "list", active, q.Filter.Category, q.Filter.Search)
	return querycache.Fetch(ctx, h.cache, key, func(ctx context.Context) ([]domain.Product, error) {
		return h.repo.List(ctx, q.Filter)
	})
}
