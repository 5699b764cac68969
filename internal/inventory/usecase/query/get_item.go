package query

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
)

// GetItemQuery represents the query to get an item by id
type GetItemQuery struct {
	ID string
}

// GetItemHandler handles get inventory item query
type GetItemHandler struct {
	repo  domain.InventoryRepository
	cache *querycache.Cache
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.InventoryRepository, cache *querycache.Cache) *GetItemHandler {
	return &GetItemHandler{repo: repo, cache: cache}
}

// Handle executes the get inventory item query
func (h *GetItemHandler) Handle(ctx context.Context, q GetItemQuery) (*domain.Item, error) {
	key := querycache.Key(ctx, domain.CachePrefix, "id", q.ID)
	return querycache.Fetch(ctx, h.cache, key, func(ctx context.Context) (*domain.Item, error) {
		return h.repo.Get(ctx, q.ID)
	})
}
