package command

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/auth/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// ChangePasswordCommand represents a password change of the signed-in user
type ChangePasswordCommand struct {
	Form domain.PasswordForm
}

// ChangePasswordHandler handles the change password command
type ChangePasswordHandler struct {
	repo      domain.AuthRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewChangePasswordHandler creates a new change password handler
func NewChangePasswordHandler(repo domain.AuthRepository, v *validation.Validator, effects *mutation.Effects) *ChangePasswordHandler {
	return &ChangePasswordHandler{repo: repo, validator: v, effects: effects}
}

// Handle validates the form and changes the password
func (h *ChangePasswordHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := h.validator.Struct(cmd.Form); err != nil {
		return err
	}
	if err := h.repo.ChangePassword(ctx, cmd.Form); err != nil {
		return err
	}
	h.effects.Committed(ctx, domain.EventPasswordChanged, "user", "")
	return nil
}
