package product

import (
	"github.com/google/wire"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/product/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/product/repository"
)

// ProvideProductRepository provides the traced REST product repository
func ProvideProductRepository(api *apiclient.Client) domain.ProductRepository {
	return repository.NewRESTProductRepositoryWithTracing(api)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)
