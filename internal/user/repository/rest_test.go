package repository

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient/apitest"
	"github.com/Nawaf-Almansour/prep-manger/internal/user/domain"
)

func TestListNormalizesIDs(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"GET /users": {Body: `{"success":true,"data":{"users":[{"_id":"u1","name":"Sara","role":"prep"},{"id":"u2","name":"Omar","role":"manager","isActive":false}]}}`},
	})
	repo := NewRESTUserRepositoryWithTracing(api.Client())

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.True(t, users[0].Active())
	assert.Equal(t, "u2", users[1].ID)
	assert.False(t, users[1].Active())
}

func TestListByRole(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"GET /users/role/prep": {Body: `{"data":[{"_id":"u1","name":"Sara","role":"prep"}]}`},
	})
	repo := NewRESTUserRepository(api.Client())

	users, err := repo.ListByRole(context.Background(), "prep")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Sara", users[0].Name)
}

func TestCreateOmitsConfirmPassword(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"POST /users": {Status: http.StatusCreated, Body: `{"data":{"user":{"_id":"u9","name":"Lina"}}}`},
	})
	repo := NewRESTUserRepository(api.Client())

	u, err := repo.Create(context.Background(), domain.CreateUserForm{
		Name: "Lina", Email: "lina@test.com", Password: "secret1", ConfirmPassword: "secret1", Role: "prep",
	})
	require.NoError(t, err)
	assert.Equal(t, "u9", u.ID)

	body := api.Calls()[0].JSON(t)
	assert.Equal(t, "lina@test.com", body["email"])
	assert.NotContains(t, body, "confirmPassword")
	assert.NotContains(t, body, "phone")
}

func TestUpdateUsesPatchAndFallbackID(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"PATCH /users/u3": {Body: `{"data":{"name":"Renamed"}}`},
	})
	repo := NewRESTUserRepository(api.Client())

	u, err := repo.Update(context.Background(), "u3", domain.UpdateUserForm{Name: "Renamed", Role: "supervisor"})
	require.NoError(t, err)
	assert.Equal(t, "u3", u.ID)
	assert.Equal(t, "Renamed", u.Name)
	assert.Equal(t, http.MethodPatch, api.Calls()[0].Method)
}
