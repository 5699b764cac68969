package repository

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/dashboard/domain"
	"github.com/Nawaf-Almansour/prep-manger/pkg/tracing"
)

const tracerName = "reports-repository"

// RESTReportsRepository implements domain.ReportsRepository.
type RESTReportsRepository struct {
	api *apiclient.Client
}

func NewRESTReportsRepository(api *apiclient.Client) *RESTReportsRepository {
	return &RESTReportsRepository{api: api}
}

func (r *RESTReportsRepository) Dashboard(ctx context.Context) (*domain.Analytics, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Dashboard")
	a, err := r.dashboard(ctx)
	span.SetAttributes(attribute.Bool("reports.available", a != nil))
	tracing.End(span, err)
	return a, err
}

func (r *RESTReportsRepository) dashboard(ctx context.Context) (*domain.Analytics, error) {
	resp, err := r.api.Get(ctx, "/reports/dashboard", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard analytics: %w", err)
	}
	var a domain.Analytics
	if err := resp.DecodeOne(&a, "analytics"); err != nil {
		return nil, err
	}
	return &a, nil
}
