package query

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
)

// ListItemsQuery lists stock items. Search filters by name after the fetch.
type ListItemsQuery struct {
	LowStockOnly bool
	Search       string
}

// ListItemsHandler handles list inventory query
type ListItemsHandler struct {
	repo  domain.InventoryRepository
	cache *querycache.Cache
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.InventoryRepository, cache *querycache.Cache) *ListItemsHandler {
	return &ListItemsHandler{repo: repo, cache: cache}
}

// Handle executes the list inventory query
func (h *ListItemsHandler) Handle(ctx context.Context, q ListItemsQuery) ([]domain.Item, error) {
	var (
		items []domain.Item
		err   error
	)
	if q.LowStockOnly {
		items, err = querycache.Fetch(ctx, h.cache, querycache.Key(ctx, domain.CachePrefix, "low-stock"), h.repo.LowStock)
	} else {
		items, err = querycache.Fetch(ctx, h.cache, querycache.Key(ctx, domain.CachePrefix, "all"), h.repo.List)
	}
	if err != nil {
		return nil, err
	}
	return domain.FilterByName(items, q.Search), nil
}
