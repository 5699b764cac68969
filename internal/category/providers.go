package category

import (
	"github.com/google/wire"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/category/repository"
)

// ProvideCategoryRepository provides the traced REST category repository
func ProvideCategoryRepository(api *apiclient.Client) domain.CategoryRepository {
	return repository.NewRESTCategoryRepositoryWithTracing(api)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCategoryRepository,
)
