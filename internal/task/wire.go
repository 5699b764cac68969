//go:build wireinject
// +build wireinject

package task

import (
	"github.com/google/wire"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/delivery/http"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(api *apiclient.Client, v *validation.Validator, effects *mutation.Effects, views *view.Renderer, products http.ProductGetter, users http.UserLister) (*http.TaskHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewTaskHandler,
	)
	return nil, nil
}
