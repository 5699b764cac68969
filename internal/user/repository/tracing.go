package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/user/domain"
	"github.com/Nawaf-Almansour/prep-manger/pkg/tracing"
)

const tracerName = "user-repository"

// RESTUserRepositoryWithTracing wraps RESTUserRepository with spans.
type RESTUserRepositoryWithTracing struct {
	*RESTUserRepository
}

func NewRESTUserRepositoryWithTracing(api *apiclient.Client) *RESTUserRepositoryWithTracing {
	return &RESTUserRepositoryWithTracing{RESTUserRepository: NewRESTUserRepository(api)}
}

func (r *RESTUserRepositoryWithTracing) List(ctx context.Context) ([]domain.User, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.List")
	users, err := r.RESTUserRepository.List(ctx)
	span.SetAttributes(attribute.Int("user.count", len(users)))
	tracing.End(span, err)
	return users, err
}

func (r *RESTUserRepositoryWithTracing) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.ListByRole", attribute.String("user.role", role))
	users, err := r.RESTUserRepository.ListByRole(ctx, role)
	tracing.End(span, err)
	return users, err
}

func (r *RESTUserRepositoryWithTracing) Get(ctx context.Context, id string) (*domain.User, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Get", attribute.String("user.id", id))
	u, err := r.RESTUserRepository.Get(ctx, id)
	tracing.End(span, err)
	return u, err
}

func (r *RESTUserRepositoryWithTracing) Create(ctx context.Context, form domain.CreateUserForm) (*domain.User, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Create", attribute.String("user.role", form.Role))
	u, err := r.RESTUserRepository.Create(ctx, form)
	if u != nil {
		span.SetAttributes(attribute.String("user.id", u.ID))
	}
	tracing.End(span, err)
	return u, err
}

func (r *RESTUserRepositoryWithTracing) Update(ctx context.Context, id string, form domain.UpdateUserForm) (*domain.User, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Update", attribute.String("user.id", id))
	u, err := r.RESTUserRepository.Update(ctx, id, form)
	tracing.End(span, err)
	return u, err
}
