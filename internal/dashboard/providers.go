package dashboard

import (
	"github.com/google/wire"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/dashboard/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/dashboard/repository"
)

// ProvideReportsRepository provides the REST analytics repository
func ProvideReportsRepository(api *apiclient.Client) domain.ReportsRepository {
	return repository.NewRESTReportsRepository(api)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideReportsRepository,
)
