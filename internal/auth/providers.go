package auth

import (
	"github.com/google/wire"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/auth/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/auth/repository"
)

// ProvideAuthRepository provides the traced REST auth repository
func ProvideAuthRepository(api *apiclient.Client) domain.AuthRepository {
	return repository.NewRESTAuthRepositoryWithTracing(api)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideAuthRepository,
)
