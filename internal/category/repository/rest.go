package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
)

// RESTCategoryRepository implements domain.CategoryRepository over /categories.
type RESTCategoryRepository struct {
	api *apiclient.Client
}

func NewRESTCategoryRepository(api *apiclient.Client) *RESTCategoryRepository {
	return &RESTCategoryRepository{api: api}
}

func (r *RESTCategoryRepository) List(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	var q url.Values
	if activeOnly {
		q = url.Values{"isActive": {"true"}}
	}
	resp, err := r.api.Get(ctx, "/categories", q)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	var categories []domain.Category
	if err := resp.DecodeList(&categories, "categories"); err != nil {
		return nil, err
	}
	return apiclient.NormalizeIDs(categories), nil
}

func (r *RESTCategoryRepository) Create(ctx context.Context, form domain.CategoryForm) (*domain.Category, error) {
	resp, err := r.api.Post(ctx, "/categories", form)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return decodeCategory(resp, "")
}

func (r *RESTCategoryRepository) Update(ctx context.Context, id string, form domain.CategoryForm) (*domain.Category, error) {
	resp, err := r.api.Put(ctx, "/categories/"+url.PathEscape(id), form)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return decodeCategory(resp, id)
}

func (r *RESTCategoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.api.Delete(ctx, "/categories/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (r *RESTCategoryRepository) DeletePermanent(ctx context.Context, id string) error {
	if _, err := r.api.Delete(ctx, "/categories/"+url.PathEscape(id)+"/permanent"); err != nil {
		return fmt.Errorf("failed to delete category permanently: %w", err)
	}
	return nil
}

func decodeCategory(resp *apiclient.Response, fallbackID string) (*domain.Category, error) {
	var c domain.Category
	if err := resp.DecodeOne(&c, "category"); err != nil {
		return nil, err
	}
	c.NormalizeID()
	if c.ID == "" {
		c.ID = fallbackID
	}
	return &c, nil
}
