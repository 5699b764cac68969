package command

import (
	"context"
	"strings"

	"github.com/Nawaf-Almansour/prep-manger/internal/auth/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// RegisterCommand represents a self sign-up
type RegisterCommand struct {
	Form domain.RegisterForm
}

// RegisterHandler handles the register command
type RegisterHandler struct {
	repo      domain.AuthRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(repo domain.AuthRepository, v *validation.Validator, effects *mutation.Effects) *RegisterHandler {
	return &RegisterHandler{repo: repo, validator: v, effects: effects}
}

// Handle validates the form and creates the account
func (h *RegisterHandler) Handle(ctx context.Context, cmd RegisterCommand) (*domain.AuthResult, error) {
	form := cmd.Form
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)

	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	res, err := h.repo.Register(ctx, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventRegistered, "user", res.User.ID, domain.CachePrefix, "users")
	return res, nil
}
