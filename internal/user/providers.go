package user

import (
	"github.com/google/wire"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/user/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/user/repository"
)

// ProvideUserRepository provides the traced REST user repository
func ProvideUserRepository(api *apiclient.Client) domain.UserRepository {
	return repository.NewRESTUserRepositoryWithTracing(api)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)
