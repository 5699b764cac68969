package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	"github.com/Nawaf-Almansour/prep-manger/pkg/tracing"
)

const tracerName = "inventory-repository"

// RESTInventoryRepositoryWithTracing wraps RESTInventoryRepository with spans.
type RESTInventoryRepositoryWithTracing struct {
	*RESTInventoryRepository
}

func NewRESTInventoryRepositoryWithTracing(api *apiclient.Client) *RESTInventoryRepositoryWithTracing {
	return &RESTInventoryRepositoryWithTracing{RESTInventoryRepository: NewRESTInventoryRepository(api)}
}

func (r *RESTInventoryRepositoryWithTracing) List(ctx context.Context) ([]domain.Item, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.List")
	items, err := r.RESTInventoryRepository.List(ctx)
	span.SetAttributes(attribute.Int("inventory.count", len(items)))
	tracing.End(span, err)
	return items, err
}

func (r *RESTInventoryRepositoryWithTracing) LowStock(ctx context.Context) ([]domain.Item, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.LowStock")
	items, err := r.RESTInventoryRepository.LowStock(ctx)
	span.SetAttributes(attribute.Int("inventory.count", len(items)))
	tracing.End(span, err)
	return items, err
}

func (r *RESTInventoryRepositoryWithTracing) Get(ctx context.Context, id string) (*domain.Item, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Get", attribute.String("inventory.id", id))
	it, err := r.RESTInventoryRepository.Get(ctx, id)
	if it != nil {
		span.SetAttributes(
			attribute.Float64("inventory.quantity", it.CurrentQuantity),
			attribute.String("inventory.status", it.Status),
		)
	}
	tracing.End(span, err)
	return it, err
}

func (r *RESTInventoryRepositoryWithTracing) Create(ctx context.Context, form domain.ItemForm) (*domain.Item, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Create",
		attribute.String("inventory.name", form.Name),
		attribute.Bool("inventory.has_image", form.Image != nil),
	)
	it, err := r.RESTInventoryRepository.Create(ctx, form)
	if it != nil {
		span.SetAttributes(attribute.String("inventory.id", it.ID))
	}
	tracing.End(span, err)
	return it, err
}

func (r *RESTInventoryRepositoryWithTracing) Update(ctx context.Context, id string, form domain.ItemForm) (*domain.Item, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Update",
		attribute.String("inventory.id", id),
		attribute.Bool("inventory.has_image", form.Image != nil),
	)
	it, err := r.RESTInventoryRepository.Update(ctx, id, form)
	tracing.End(span, err)
	return it, err
}

func (r *RESTInventoryRepositoryWithTracing) Restock(ctx context.Context, id string, form domain.RestockForm) (*domain.Item, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Restock",
		attribute.String("inventory.id", id),
		attribute.Float64("inventory.restock_quantity", form.Quantity),
	)
	it, err := r.RESTInventoryRepository.Restock(ctx, id, form)
	tracing.End(span, err)
	return it, err
}
