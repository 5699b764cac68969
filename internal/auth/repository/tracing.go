package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/auth/domain"
	"github.com/Nawaf-Almansour/prep-manger/pkg/tracing"
)

const tracerName = "auth-repository"

// RESTAuthRepositoryWithTracing wraps RESTAuthRepository with spans. Credentials
// never become attributes.
type RESTAuthRepositoryWithTracing struct {
	*RESTAuthRepository
}

func NewRESTAuthRepositoryWithTracing(api *apiclient.Client) *RESTAuthRepositoryWithTracing {
	return &RESTAuthRepositoryWithTracing{RESTAuthRepository: NewRESTAuthRepository(api)}
}

func (r *RESTAuthRepositoryWithTracing) Login(ctx context.Context, form domain.LoginForm) (*domain.AuthResult, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Login", attribute.Bool("auth.remember_me", form.RememberMe))
	res, err := r.RESTAuthRepository.Login(ctx, form)
	if res != nil {
		span.SetAttributes(attribute.String("user.id", res.User.ID), attribute.String("user.role", res.User.Role))
	}
	tracing.End(span, err)
	return res, err
}

func (r *RESTAuthRepositoryWithTracing) Register(ctx context.Context, form domain.RegisterForm) (*domain.AuthResult, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Register", attribute.String("user.role", form.Role))
	res, err := r.RESTAuthRepository.Register(ctx, form)
	tracing.End(span, err)
	return res, err
}

func (r *RESTAuthRepositoryWithTracing) Me(ctx context.Context) (*domain.AuthUser, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Me")
	u, err := r.RESTAuthRepository.Me(ctx)
	tracing.End(span, err)
	return u, err
}

func (r *RESTAuthRepositoryWithTracing) UpdateProfile(ctx context.Context, form domain.ProfileForm) (*domain.AuthUser, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.UpdateProfile")
	u, err := r.RESTAuthRepository.UpdateProfile(ctx, form)
	tracing.End(span, err)
	return u, err
}

func (r *RESTAuthRepositoryWithTracing) ChangePassword(ctx context.Context, form domain.PasswordForm) error {
	ctx, span := tracing.Start(ctx, tracerName, "repository.ChangePassword")
	err := r.RESTAuthRepository.ChangePassword(ctx, form)
	tracing.End(span, err)
	return err
}
