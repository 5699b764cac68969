package query

import (
	"context"
	"errors"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/dashboard/domain"
	inventorydomain "github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	inventoryquery "github.com/Nawaf-Almansour/prep-manger/internal/inventory/usecase/query"
	taskdomain "github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
	taskquery "github.com/Nawaf-Almansour/prep-manger/internal/task/usecase/query"
	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

// TaskLister reads task lists.
type TaskLister interface {
	Handle(ctx context.Context, q taskquery.ListTasksQuery) ([]taskdomain.Task, error)
}

// ItemLister reads inventory lists.
type ItemLister interface {
	Handle(ctx context.Context, q inventoryquery.ListItemsQuery) ([]inventorydomain.Item, error)
}

// OverviewQuery represents the dashboard query
type OverviewQuery struct{}

// OverviewHandler handles the dashboard query
type OverviewHandler struct {
	tasks   TaskLister
	items   ItemLister
	reports domain.ReportsRepository
}

// NewOverviewHandler creates a new dashboard query handler
func NewOverviewHandler(tasks TaskLister, items ItemLister, reports domain.ReportsRepository) *OverviewHandler {
	return &OverviewHandler{tasks: tasks, items: items, reports: reports}
}

// Handle loads today's tasks, low stock items and analytics
func (h *OverviewHandler) Handle(ctx context.Context, _ OverviewQuery) (*domain.Overview, error) {
	today, err := h.tasks.Handle(ctx, taskquery.ListTasksQuery{Scope: taskquery.ScopeToday})
	if err != nil {
		return nil, err
	}
	lowStock, err := h.items.Handle(ctx, inventoryquery.ListItemsQuery{LowStockOnly: true})
	if err != nil {
		return nil, err
	}
	analytics, err := loadAnalytics(ctx, h.reports)
	if err != nil {
		return nil, err
	}

	stats := domain.StatsFor(today)
	return &domain.Overview{
		Stats:     stats,
		Rates:     domain.RatesFor(stats, analytics),
		Analytics: analytics,
		Today:     today,
		Board:     taskdomain.GroupByStatus(today),
		LowStock:  lowStock,
	}, nil
}

// loadAnalytics returns nil analytics when the endpoint fails for any reason
// other than an expired session.
func loadAnalytics(ctx context.Context, reports domain.ReportsRepository) (*domain.Analytics, error) {
	a, err := reports.Dashboard(ctx)
	if err == nil {
		return a, nil
	}
	if errors.Is(err, apiclient.ErrUnauthorized) {
		return nil, err
	}
	logger.Warn(ctx).Err(err).Msg("Dashboard analytics unavailable, using task counts")
	return nil, nil
}
