package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/auth/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

type fakeRepo struct {
	domain.AuthRepository
	logins    []domain.LoginForm
	passwords []domain.PasswordForm
}

func (f *fakeRepo) Login(_ context.Context, form domain.LoginForm) (*domain.AuthResult, error) {
	f.logins = append(f.logins, form)
	res := &domain.AuthResult{Token: "tok", User: domain.AuthUser{Name: "John"}}
	res.User.ID = "u1"
	return res, nil
}

func (f *fakeRepo) ChangePassword(_ context.Context, form domain.PasswordForm) error {
	f.passwords = append(f.passwords, form)
	return nil
}

func TestLoginValidation(t *testing.T) {
	tests := []struct {
		name   string
		form   domain.LoginForm
		errors map[string]string
	}{
		{
			name:   "bad email",
			form:   domain.LoginForm{Email: "john", Password: "secret1"},
			errors: map[string]string{"email": "Invalid email address"},
		},
		{
			name:   "short password after trim",
			form:   domain.LoginForm{Email: "john@test.com", Password: "  abc  "},
			errors: map[string]string{"password": "Password must be at least 6 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			h := NewLoginHandler(repo, validation.New(), nil)

			_, err := h.Handle(context.Background(), LoginCommand{Form: tt.form})
			errs, ok := validation.AsErrors(err)
			require.True(t, ok)
			for field, msg := range tt.errors {
				assert.Equal(t, msg, errs.Get(field))
			}
			assert.Empty(t, repo.logins)
		})
	}
}

func TestLoginTrimsCredentials(t *testing.T) {
	repo := &fakeRepo{}
	h := NewLoginHandler(repo, validation.New(), nil)

	res, err := h.Handle(context.Background(), LoginCommand{Form: domain.LoginForm{
		Email: " john.manager@test.com ", Password: " password123 ", RememberMe: true,
	}})
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	require.Len(t, repo.logins, 1)
	assert.Equal(t, "john.manager@test.com", repo.logins[0].Email)
	assert.Equal(t, "password123", repo.logins[0].Password)
	assert.True(t, repo.logins[0].RememberMe)
}

func TestChangePasswordValidation(t *testing.T) {
	repo := &fakeRepo{}
	h := NewChangePasswordHandler(repo, validation.New(), nil)

	err := h.Handle(context.Background(), ChangePasswordCommand{Form: domain.PasswordForm{
		NewPassword: "abc", ConfirmPassword: "abd",
	}})
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "Current password is required", errs.Get("currentPassword"))
	assert.Equal(t, "Password must be at least 6 characters", errs.Get("newPassword"))
	assert.Equal(t, "Passwords don't match", errs.Get("confirmPassword"))
	assert.Empty(t, repo.passwords)

	require.NoError(t, h.Handle(context.Background(), ChangePasswordCommand{Form: domain.PasswordForm{
		CurrentPassword: "old-secret", NewPassword: "new-secret", ConfirmPassword: "new-secret",
	}}))
	assert.Len(t, repo.passwords, 1)
}
