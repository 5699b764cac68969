//go:build wireinject
// +build wireinject

package dashboard

import (
	"github.com/google/wire"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/dashboard/delivery/http"
	"github.com/Nawaf-Almansour/prep-manger/internal/dashboard/usecase/query"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(api *apiclient.Client, views *view.Renderer, tasks query.TaskLister, items query.ItemLister) (*http.DashboardHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewDashboardHandler,
	)
	return nil, nil
}
