package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nawaf-Almansour/prep-manger/internal/dashboard/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/dashboard/usecase/query"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
)

// DashboardHandler serves the home dashboard and the reports page
type DashboardHandler struct {
	overviewHandler *query.OverviewHandler
	reportHandler   *query.ReportHandler

	views *view.Renderer
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(reports domain.ReportsRepository, views *view.Renderer, tasks query.TaskLister, items query.ItemLister) *DashboardHandler {
	return &DashboardHandler{
		overviewHandler: query.NewOverviewHandler(tasks, items, reports),
		reportHandler:   query.NewReportHandler(tasks, reports),
		views:           views,
	}
}

// Dashboard renders GET /dashboard
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	o, err := h.overviewHandler.Handle(c.UserContext(), query.OverviewQuery{})
	if err != nil {
		return err
	}
	return h.views.Render(c, fiber.StatusOK, "dashboard/index", "dashboard.title", fiber.Map{
		"Overview": o,
	})
}

// Reports renders GET /reports
func (h *DashboardHandler) Reports(c *fiber.Ctx) error {
	r, err := h.reportHandler.Handle(c.UserContext(), query.ReportQuery{})
	if err != nil {
		return err
	}
	return h.views.Render(c, fiber.StatusOK, "reports/index", "reports.title", fiber.Map{
		"Report": r,
	})
}
