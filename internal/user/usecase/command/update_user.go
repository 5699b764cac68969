package command

import (
	"context"
	"strings"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/user/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// UpdateUserCommand represents the command to update a user
type UpdateUserCommand struct {
	ID   string
	Form domain.UpdateUserForm
}

// UpdateUserHandler handles user update command
type UpdateUserHandler struct {
	repo      domain.UserRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository, v *validation.Validator, effects *mutation.Effects) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo, validator: v, effects: effects}
}

// Handle validates the form and updates the user
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	form := cmd.Form
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)

	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	u, err := h.repo.Update(ctx, cmd.ID, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventUserUpdated, "user", cmd.ID, domain.CachePrefix)
	return u, nil
}
