package query

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/dashboard/domain"
	taskquery "github.com/Nawaf-Almansour/prep-manger/internal/task/usecase/query"
)

// ReportQuery represents the reports page query
type ReportQuery struct{}

// ReportHandler handles the reports query
type ReportHandler struct {
	tasks   TaskLister
	reports domain.ReportsRepository
}

// NewReportHandler creates a new report query handler
func NewReportHandler(tasks TaskLister, reports domain.ReportsRepository) *ReportHandler {
	return &ReportHandler{tasks: tasks, reports: reports}
}

// Handle counts every task by status and merges the analytics
func (h *ReportHandler) Handle(ctx context.Context, _ ReportQuery) (*domain.Report, error) {
	all, err := h.tasks.Handle(ctx, taskquery.ListTasksQuery{Scope: taskquery.ScopeAll})
	if err != nil {
		return nil, err
	}
	analytics, err := loadAnalytics(ctx, h.reports)
	if err != nil {
		return nil, err
	}

	stats := domain.StatsFor(all)
	return &domain.Report{
		Stats:     stats,
		Rates:     domain.RatesFor(stats, analytics),
		Analytics: analytics,
	}, nil
}
