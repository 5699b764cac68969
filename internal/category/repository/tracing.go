package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
	"github.com/Nawaf-Almansour/prep-manger/pkg/tracing"
)

const tracerName = "category-repository"

// RESTCategoryRepositoryWithTracing wraps RESTCategoryRepository with spans.
type RESTCategoryRepositoryWithTracing struct {
	*RESTCategoryRepository
}

func NewRESTCategoryRepositoryWithTracing(api *apiclient.Client) *RESTCategoryRepositoryWithTracing {
	return &RESTCategoryRepositoryWithTracing{RESTCategoryRepository: NewRESTCategoryRepository(api)}
}

func (r *RESTCategoryRepositoryWithTracing) List(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.List", attribute.Bool("category.active_only", activeOnly))
	categories, err := r.RESTCategoryRepository.List(ctx, activeOnly)
	span.SetAttributes(attribute.Int("category.count", len(categories)))
	tracing.End(span, err)
	return categories, err
}

func (r *RESTCategoryRepositoryWithTracing) Create(ctx context.Context, form domain.CategoryForm) (*domain.Category, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Create", attribute.String("category.name", form.Name))
	c, err := r.RESTCategoryRepository.Create(ctx, form)
	tracing.End(span, err)
	return c, err
}

func (r *RESTCategoryRepositoryWithTracing) Update(ctx context.Context, id string, form domain.CategoryForm) (*domain.Category, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Update", attribute.String("category.id", id))
	c, err := r.RESTCategoryRepository.Update(ctx, id, form)
	tracing.End(span, err)
	return c, err
}

func (r *RESTCategoryRepositoryWithTracing) Delete(ctx context.Context, id string) error {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Delete", attribute.String("category.id", id))
	err := r.RESTCategoryRepository.Delete(ctx, id)
	tracing.End(span, err)
	return err
}

func (r *RESTCategoryRepositoryWithTracing) DeletePermanent(ctx context.Context, id string) error {
	ctx, span := tracing.Start(ctx, tracerName, "repository.DeletePermanent", attribute.String("category.id", id))
	err := r.RESTCategoryRepository.DeletePermanent(ctx, id)
	tracing.End(span, err)
	return err
}
