package repository

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient/apitest"
	"github.com/Nawaf-Almansour/prep-manger/internal/auth/domain"
)

func TestLoginResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"nested", `{"success":true,"data":{"token":"tok","user":{"_id":"u1","name":"John","role":"manager"}}}`},
		{"root", `{"token":"tok","user":{"id":"u1","name":"John","role":"manager"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := apitest.New(t, map[string]apitest.Reply{"POST /auth/login": {Body: tt.body}})
			repo := NewRESTAuthRepositoryWithTracing(api.Client())

			res, err := repo.Login(context.Background(), domain.LoginForm{Email: "john@test.com", Password: "secret1"})
			require.NoError(t, err)
			assert.Equal(t, "tok", res.Token)
			assert.Equal(t, "u1", res.User.ID)
			assert.Equal(t, "manager", res.User.Principal().Role)

			body := api.Calls()[0].JSON(t)
			assert.Equal(t, "john@test.com", body["email"])
		})
	}
}

func TestLoginWithoutTokenFails(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{"POST /auth/login": {Body: `{"data":{"user":{"_id":"u1"}}}`}})
	repo := NewRESTAuthRepository(api.Client())

	_, err := repo.Login(context.Background(), domain.LoginForm{})
	assert.ErrorIs(t, err, domain.ErrNoCredentials)
}

func TestLoginRejectedCredentials(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"POST /auth/login": {Status: http.StatusUnauthorized, Body: `{"message":"Invalid credentials"}`},
	})
	repo := NewRESTAuthRepository(api.Client())

	_, err := repo.Login(context.Background(), domain.LoginForm{})
	assert.ErrorIs(t, err, apiclient.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", apiclient.Message(err, "fallback"))
}

func TestChangePasswordSendsTwoFields(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{"PATCH /auth/password": {Body: `{"success":true}`}})
	repo := NewRESTAuthRepository(api.Client())

	err := repo.ChangePassword(context.Background(), domain.PasswordForm{
		CurrentPassword: "old-secret", NewPassword: "new-secret", ConfirmPassword: "new-secret",
	})
	require.NoError(t, err)

	body := api.Calls()[0].JSON(t)
	assert.Len(t, body, 2)
	assert.Equal(t, "new-secret", body["newPassword"])
}

func TestMeUnwrapsUser(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{"GET /auth/me": {Body: `{"data":{"user":{"_id":"u5","name":"Mona"}}}`}})
	repo := NewRESTAuthRepository(api.Client())

	u, err := repo.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u5", u.ID)
	assert.Equal(t, "Mona", u.Name)
}
