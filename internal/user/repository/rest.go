package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/user/domain"
)

// RESTUserRepository implements domain.UserRepository over the /users endpoints.
type RESTUserRepository struct {
	api *apiclient.Client
}

func NewRESTUserRepository(api *apiclient.Client) *RESTUserRepository {
	return &RESTUserRepository{api: api}
}

func (r *RESTUserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, "/users")
}

func (r *RESTUserRepository) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	return r.list(ctx, "/users/role/"+url.PathEscape(role))
}

func (r *RESTUserRepository) list(ctx context.Context, path string) ([]domain.User, error) {
	resp, err := r.api.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	var users []domain.User
	if err := resp.DecodeList(&users, "users"); err != nil {
		return nil, err
	}
	return apiclient.NormalizeIDs(users), nil
}

func (r *RESTUserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	resp, err := r.api.Get(ctx, "/users/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return decodeUser(resp, id)
}

func (r *RESTUserRepository) Create(ctx context.Context, form domain.CreateUserForm) (*domain.User, error) {
	body := map[string]any{
		"name":     form.Name,
		"email":    form.Email,
		"password": form.Password,
		"role":     form.Role,
	}
	if form.Phone != "" {
		body["phone"] = form.Phone
	}

	resp, err := r.api.Post(ctx, "/users", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return decodeUser(resp, "")
}

func (r *RESTUserRepository) Update(ctx context.Context, id string, form domain.UpdateUserForm) (*domain.User, error) {
	resp, err := r.api.Patch(ctx, "/users/"+url.PathEscape(id), form)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return decodeUser(resp, id)
}

func decodeUser(resp *apiclient.Response, fallbackID string) (*domain.User, error) {
	var u domain.User
	if err := resp.DecodeOne(&u, "user"); err != nil {
		return nil, err
	}
	u.NormalizeID()
	if u.ID == "" {
		u.ID = fallbackID
	}
	return &u, nil
}
