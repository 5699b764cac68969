package command

import (
	"context"
	"strings"

	"github.com/Nawaf-Almansour/prep-manger/internal/auth/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// LoginCommand represents a sign-in attempt
type LoginCommand struct {
	Form domain.LoginForm
}

// LoginHandler handles the login command
type LoginHandler struct {
	repo      domain.AuthRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(repo domain.AuthRepository, v *validation.Validator, effects *mutation.Effects) *LoginHandler {
	return &LoginHandler{repo: repo, validator: v, effects: effects}
}

// Handle validates the credentials and exchanges them for a token
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*domain.AuthResult, error) {
	form := cmd.Form
	form.Email = strings.TrimSpace(form.Email)
	form.Password = strings.TrimSpace(form.Password)

	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	res, err := h.repo.Login(ctx, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventLoggedIn, "user", res.User.ID)
	return res, nil
}
