//go:build wireinject
// +build wireinject

package auth

import (
	"github.com/google/wire"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/auth/delivery/http"
	"github.com/Nawaf-Almansour/prep-manger/internal/metrics"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/preferences"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	api *apiclient.Client,
	v *validation.Validator,
	effects *mutation.Effects,
	views *view.Renderer,
	sessions *session.Manager,
	prefs preferences.Repository,
	m *metrics.Metrics,
) (*http.AuthHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewAuthHandler,
	)
	return nil, nil
}
