package domain

import (
	"context"
	"time"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
)

// Activity event types
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
)

// CachePrefix scopes every cached user query.
const CachePrefix = "users"

// Roles a manager may assign.
var AssignableRoles = []string{"prep", "supervisor", "manager"}

// User is a dashboard account as listed by the API.
type User struct {
	apiclient.Identity
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  *bool     `json:"isActive,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Active treats a missing flag as active.
func (u User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}

// CreateUserForm is submitted from the new user page.
type CreateUserForm struct {
	Name            string `json:"name" validate:"min=2" message:"Name must be at least 2 characters"`
	Email           string `json:"email" validate:"email" message:"Invalid email address"`
	Password        string `json:"password" validate:"min=6" message:"Password must be at least 6 characters"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password" message:"Passwords don't match"`
	Role            string `json:"role" validate:"oneof=prep supervisor manager" message:"Select a role"`
	Phone           string `json:"phone,omitempty"`
}

// UpdateUserForm is submitted from the edit user page.
type UpdateUserForm struct {
	Name     string `json:"name" validate:"min=2" message:"Name must be at least 2 characters"`
	Email    string `json:"email" validate:"email" message:"Invalid email address"`
	Role     string `json:"role" validate:"oneof=prep supervisor manager admin" message:"Select a role"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"isActive"`
}

// UserRepository reads and writes users through the API.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role string) ([]User, error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, form CreateUserForm) (*User, error)
	Update(ctx context.Context, id string, form UpdateUserForm) (*User, error)
}
