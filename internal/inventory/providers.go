package inventory

import (
	"github.com/google/wire"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/repository"
)

// ProvideInventoryRepository provides the traced REST inventory repository
func ProvideInventoryRepository(api *apiclient.Client) domain.InventoryRepository {
	return repository.NewRESTInventoryRepositoryWithTracing(api)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideInventoryRepository,
)
