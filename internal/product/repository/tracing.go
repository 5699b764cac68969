package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/product/domain"
	"github.com/Nawaf-Almansour/prep-manger/pkg/tracing"
)

const tracerName = "product-repository"

// RESTProductRepositoryWithTracing wraps RESTProductRepository with spans.
type RESTProductRepositoryWithTracing struct {
	*RESTProductRepository
}

func NewRESTProductRepositoryWithTracing(api *apiclient.Client) *RESTProductRepositoryWithTracing {
	return &RESTProductRepositoryWithTracing{RESTProductRepository: NewRESTProductRepository(api)}
}

func (r *RESTProductRepositoryWithTracing) List(ctx context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.List",
		attribute.String("product.search", filter.Search),
		attribute.String("product.category", filter.Category),
	)
	products, err := r.RESTProductRepository.List(ctx, filter)
	span.SetAttributes(attribute.Int("product.count", len(products)))
	tracing.End(span, err)
	return products, err
}

func (r *RESTProductRepositoryWithTracing) Get(ctx context.Context, id string) (*domain.Product, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Get", attribute.String("product.id", id))
	p, err := r.RESTProductRepository.Get(ctx, id)
	if p != nil {
		span.SetAttributes(attribute.Int("product.ingredients", len(p.Ingredients)))
	}
	tracing.End(span, err)
	return p, err
}

func (r *RESTProductRepositoryWithTracing) Create(ctx context.Context, form domain.ProductForm) (*domain.Product, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Create",
		attribute.String("product.name", form.Name),
		attribute.Int("product.ingredients", len(form.Ingredients)),
		attribute.Bool("product.has_image", form.Image != nil),
	)
	p, err := r.RESTProductRepository.Create(ctx, form)
	if p != nil {
		span.SetAttributes(attribute.String("product.id", p.ID))
	}
	tracing.End(span, err)
	return p, err
}

func (r *RESTProductRepositoryWithTracing) Update(ctx context.Context, id string, form domain.ProductForm) (*domain.Product, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Update",
		attribute.String("product.id", id),
		attribute.Bool("product.has_image", form.Image != nil),
	)
	p, err := r.RESTProductRepository.Update(ctx, id, form)
	tracing.End(span, err)
	return p, err
}

func (r *RESTProductRepositoryWithTracing) Delete(ctx context.Context, id string) error {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Delete", attribute.String("product.id", id))
	err := r.RESTProductRepository.Delete(ctx, id)
	tracing.End(span, err)
	return err
}
