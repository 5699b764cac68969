package task

import (
	"github.com/google/wire"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/repository"
)

// ProvideTaskRepository provides the traced REST task repository
func ProvideTaskRepository(api *apiclient.Client) domain.TaskRepository {
	return repository.NewRESTTaskRepositoryWithTracing(api)
}

// ProvideCommentRepository provides the traced REST comment repository
func ProvideCommentRepository(api *apiclient.Client) domain.CommentRepository {
	return repository.NewRESTCommentRepositoryWithTracing(api)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideTaskRepository,
	ProvideCommentRepository,
)
