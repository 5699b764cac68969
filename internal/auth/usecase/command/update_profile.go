package command

import (
	"context"
	"strings"

	"github.com/Nawaf-Almansour/prep-manger/internal/auth/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// UpdateProfileCommand represents a partial update of the signed-in user
type UpdateProfileCommand struct {
	Form domain.ProfileForm
}

// UpdateProfileHandler handles the update profile command
type UpdateProfileHandler struct {
	repo      domain.AuthRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.AuthRepository, v *validation.Validator, effects *mutation.Effects) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo, validator: v, effects: effects}
}

// Handle sends the non-blank fields and returns the updated user
func (h *UpdateProfileHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*domain.AuthUser, error) {
	form := domain.ProfileForm{
		Name:  strings.TrimSpace(cmd.Form.Name),
		Email: strings.TrimSpace(cmd.Form.Email),
		Phone: strings.TrimSpace(cmd.Form.Phone),
	}

	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	u, err := h.repo.UpdateProfile(ctx, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventProfileUpdated, "user", u.ID, domain.CachePrefix, "users")
	return u, nil
}
