package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/auth/domain"
)

// RESTAuthRepository implements domain.AuthRepository over the /auth endpoints.
type RESTAuthRepository struct {
	api *apiclient.Client
}

func NewRESTAuthRepository(api *apiclient.Client) *RESTAuthRepository {
	return &RESTAuthRepository{api: api}
}

func (r *RESTAuthRepository) Login(ctx context.Context, form domain.LoginForm) (*domain.AuthResult, error) {
	resp, err := r.api.Post(ctx, "/auth/login", form)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	return decodeAuthResult(resp.Body)
}

func (r *RESTAuthRepository) Register(ctx context.Context, form domain.RegisterForm) (*domain.AuthResult, error) {
	resp, err := r.api.Post(ctx, "/auth/register", form)
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}
	return decodeAuthResult(resp.Body)
}

func (r *RESTAuthRepository) Me(ctx context.Context) (*domain.AuthUser, error) {
	resp, err := r.api.Get(ctx, "/auth/me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load current user: %w", err)
	}
	return decodeUser(resp)
}

func (r *RESTAuthRepository) UpdateProfile(ctx context.Context, form domain.ProfileForm) (*domain.AuthUser, error) {
	resp, err := r.api.Patch(ctx, "/auth/profile", form)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return decodeUser(resp)
}

func (r *RESTAuthRepository) ChangePassword(ctx context.Context, form domain.PasswordForm) error {
	body := map[string]string{
		"currentPassword": form.CurrentPassword,
		"newPassword":     form.NewPassword,
	}
	if _, err := r.api.Patch(ctx, "/auth/password", body); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

// authPayload covers both {data:{user,token}} and {user,token}.
type authPayload struct {
	Token string           `json:"token"`
	User  *domain.AuthUser `json:"user"`
	Data  *struct {
		Token string           `json:"token"`
		User  *domain.AuthUser `json:"user"`
	} `json:"data"`
}

func decodeAuthResult(raw []byte) (*domain.AuthResult, error) {
	var p authPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}

	token, user := p.Token, p.User
	if p.Data != nil {
		if p.Data.Token != "" {
			token = p.Data.Token
		}
		if p.Data.User != nil {
			user = p.Data.User
		}
	}
	if token == "" || user == nil {
		return nil, domain.ErrNoCredentials
	}

	user.NormalizeID()
	return &domain.AuthResult{Token: token, User: *user}, nil
}

func decodeUser(resp *apiclient.Response) (*domain.AuthUser, error) {
	var u domain.AuthUser
	if err := resp.DecodeOne(&u, "user"); err != nil {
		return nil, err
	}
	u.NormalizeID()
	return &u, nil
}
