package domain

import (
	"context"
	"errors"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
)

// Activity event types
const (
	EventLoggedIn        = "auth.logged_in"
	EventLoggedOut       = "auth.logged_out"
	EventRegistered      = "auth.registered"
	EventProfileUpdated  = "auth.profile_updated"
	EventPasswordChanged = "auth.password_changed"
)

// CachePrefix scopes the cached current user.
const CachePrefix = "auth"

// ErrNoCredentials is returned when a login or register response lacks the
// token or the user.
var ErrNoCredentials = errors.New("auth response carried no token or user")

// AuthUser is the signed-in account as returned by /auth endpoints.
type AuthUser struct {
	apiclient.Identity
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
}

// Principal converts the account into what the session keeps.
func (u AuthUser) Principal() session.Principal {
	return session.Principal{ID: u.GetID(), Name: u.Name, Email: u.Email, Role: u.Role}
}

// AuthResult is a successful login or registration.
type AuthResult struct {
	Token string
	User  AuthUser
}

type LoginForm struct {
	Email      string `json:"email" validate:"email" message:"Invalid email address"`
	Password   string `json:"password" validate:"min=6" message:"Password must be at least 6 characters"`
	RememberMe bool   `json:"rememberMe"`
}

type RegisterForm struct {
	Name     string `json:"name" validate:"min=2" message:"Name must be at least 2 characters"`
	Email    string `json:"email" validate:"email" message:"Invalid email address"`
	Password string `json:"password" validate:"min=6" message:"Password must be at least 6 characters"`
	Role     string `json:"role" validate:"oneof=prep supervisor manager" message:"Select a role"`
}

// ProfileForm is a partial user update; blank fields are not sent.
type ProfileForm struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=2" message:"Name must be at least 2 characters"`
	Email string `json:"email,omitempty" validate:"omitempty,email" message:"Invalid email address"`
	Phone string `json:"phone,omitempty"`
}

type PasswordForm struct {
	CurrentPassword string `json:"currentPassword" validate:"required" message:"Current password is required"`
	NewPassword     string `json:"newPassword" validate:"min=6" message:"Password must be at least 6 characters"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=NewPassword" message:"Passwords don't match"`
}

// AuthRepository calls the /auth endpoints.
type AuthRepository interface {
	Login(ctx context.Context, form LoginForm) (*AuthResult, error)
	Register(ctx context.Context, form RegisterForm) (*AuthResult, error)
	Me(ctx context.Context) (*AuthUser, error)
	UpdateProfile(ctx context.Context, form ProfileForm) (*AuthUser, error)
	ChangePassword(ctx context.Context, form PasswordForm) error
}
