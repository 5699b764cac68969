package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
)

// RESTInventoryRepository implements domain.InventoryRepository over /inventory.
type RESTInventoryRepository struct {
	api *apiclient.Client
}

func NewRESTInventoryRepository(api *apiclient.Client) *RESTInventoryRepository {
	return &RESTInventoryRepository{api: api}
}

func (r *RESTInventoryRepository) List(ctx context.Context) ([]domain.Item, error) {
	return r.list(ctx, "/inventory")
}

func (r *RESTInventoryRepository) LowStock(ctx context.Context) ([]domain.Item, error) {
	return r.list(ctx, "/inventory/low-stock")
}

func (r *RESTInventoryRepository) list(ctx context.Context, path string) ([]domain.Item, error) {
	resp, err := r.api.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	var items []domain.Item
	if err := resp.DecodeList(&items, "items"); err != nil {
		return nil, err
	}
	return apiclient.NormalizeIDs(items), nil
}

func (r *RESTInventoryRepository) Get(ctx context.Context, id string) (*domain.Item, error) {
	resp, err := r.api.Get(ctx, itemPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return decodeItem(resp, id)
}

func (r *RESTInventoryRepository) Create(ctx context.Context, form domain.ItemForm) (*domain.Item, error) {
	resp, err := r.api.Post(ctx, "/inventory", itemBody(form))
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return decodeItem(resp, "")
}

func (r *RESTInventoryRepository) Update(ctx context.Context, id string, form domain.ItemForm) (*domain.Item, error) {
	resp, err := r.api.Patch(ctx, itemPath(id), itemBody(form))
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return decodeItem(resp, id)
}

func (r *RESTInventoryRepository) Restock(ctx context.Context, id string, form domain.RestockForm) (*domain.Item, error) {
	resp, err := r.api.Patch(ctx, itemPath(id)+"/restock", form)
	if err != nil {
		return nil, fmt.Errorf("failed to restock inventory item: %w", err)
	}
	return decodeItem(resp, id)
}

func itemPath(id string) string {
	return "/inventory/" + url.PathEscape(id)
}

// itemBody is the JSON form, or multipart with numbers as decimal strings when
// an image is attached.
func itemBody(form domain.ItemForm) any {
	if form.Image == nil {
		return form
	}

	mp := apiclient.NewMultipart().
		File("image", *form.Image).
		Field("name", form.Name).
		OptionalField("nameAr", form.NameAr).
		Field("category", form.Category).
		Field("unit", form.Unit).
		Field("currentQuantity", decimal(form.CurrentQuantity)).
		Field("minThreshold", decimal(form.MinThreshold)).
		Field("maxThreshold", decimal(form.MaxThreshold)).
		OptionalField("supplier", form.Supplier)
	if form.Cost != nil {
		mp.Field("cost", decimal(*form.Cost))
	}
	return mp
}

func decimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func decodeItem(resp *apiclient.Response, fallbackID string) (*domain.Item, error) {
	var it domain.Item
	if err := resp.DecodeOne(&it, "item"); err != nil {
		return nil, err
	}
	it.NormalizeID()
	if it.ID == "" {
		it.ID = fallbackID
	}
	return &it, nil
}
