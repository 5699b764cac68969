package query

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/product/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
)

// GetProductQuery represents the query to get a product by id
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo  domain.ProductRepository
	cache *querycache.Cache
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository, cache *querycache.Cache) *GetProductHandler {
	return &GetProductHandler{repo: repo, cache: cache}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	key := querycache.Key(ctx, domain.CachePrefix, "id", q.ID)
	return querycache.Fetch(ctx, h.cache, key, func(ctx context.Context) (*domain.Product, error) {
		return h.repo.Get(ctx, q.ID)
	})
}
