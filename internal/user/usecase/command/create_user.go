package command

import (
	"context"
	"strings"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/user/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// CreateUserCommand represents the command to create a user
type CreateUserCommand struct {
	Form domain.CreateUserForm
}

// CreateUserHandler handles user creation command
type CreateUserHandler struct {
	repo      domain.UserRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(repo domain.UserRepository, v *validation.Validator, effects *mutation.Effects) *CreateUserHandler {
	return &CreateUserHandler{repo: repo, validator: v, effects: effects}
}

// Handle validates the form and creates the user
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*domain.User, error) {
	form := cmd.Form
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)

	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	u, err := h.repo.Create(ctx, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventUserCreated, "user", u.ID, domain.CachePrefix)
	return u, nil
}
