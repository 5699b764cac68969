package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/product/domain"
)

// RESTProductRepository implements domain.ProductRepository over /products.
type RESTProductRepository struct {
	api *apiclient.Client
}

func NewRESTProductRepository(api *apiclient.Client) *RESTProductRepository {
	return &RESTProductRepository{api: api}
}

func (r *RESTProductRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	q := url.Values{}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.IsActive != nil {
		q.Set("isActive", strconv.FormatBool(*filter.IsActive))
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}

	resp, err := r.api.Get(ctx, "/products", q)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	var products []domain.Product
	if err := resp.DecodeList(&products, "products"); err != nil {
		return nil, err
	}
	return apiclient.NormalizeIDs(products), nil
}

func (r *RESTProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	resp, err := r.api.Get(ctx, productPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return decodeProduct(resp, id)
}

func (r *RESTProductRepository) Create(ctx context.Context, form domain.ProductForm) (*domain.Product, error) {
	body, err := productBody(form)
	if err != nil {
		return nil, err
	}
	resp, err := r.api.Post(ctx, "/products", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return decodeProduct(resp, "")
}

func (r *RESTProductRepository) Update(ctx context.Context, id string, form domain.ProductForm) (*domain.Product, error) {
	body, err := productBody(form)
	if err != nil {
		return nil, err
	}
	resp, err := r.api.Put(ctx, productPath(id), body)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return decodeProduct(resp, id)
}

// Delete removes the product permanently.
func (r *RESTProductRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.api.Delete(ctx, productPath(id)+"/permanent"); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func productPath(id string) string {
	return "/products/" + url.PathEscape(id)
}

// productBody is the JSON form, or multipart with the ingredient list as a
// JSON string when an image is attached.
func productBody(form domain.ProductForm) (any, error) {
	if form.Image == nil {
		return form, nil
	}

	ingredients, err := json.Marshal(form.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ingredients: %w", err)
	}
	return apiclient.NewMultipart().
		File("image", *form.Image).
		Field("name", form.Name).
		OptionalField("nameAr", form.NameAr).
		Field("category", form.Category).
		OptionalField("description", form.Description).
		Field("prepTimeMinutes", strconv.Itoa(form.PrepTimeMinutes)).
		Field("prepIntervalHours", strconv.Itoa(form.PrepIntervalHours)).
		Field("isActive", strconv.FormatBool(form.IsActive)).
		Field("ingredients", string(ingredients)), nil
}

func decodeProduct(resp *apiclient.Response, fallbackID string) (*domain.Product, error) {
	var p domain.Product
	if err := resp.DecodeOne(&p, "product"); err != nil {
		return nil, err
	}
	p.NormalizeID()
	if p.ID == "" {
		p.ID = fallbackID
	}
	return &p, nil
}
