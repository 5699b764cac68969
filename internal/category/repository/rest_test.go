package repository

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient/apitest"
	"github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
)

func TestListActiveOnly(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"GET /categories": {Body: `{"data":{"categories":[{"_id":"c1","name":"Proteins","nameAr":"بروتينات"}]}}`},
	})
	repo := NewRESTCategoryRepositoryWithTracing(api.Client())

	cats, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "c1", cats[0].ID)
	assert.True(t, cats[0].Active())
	assert.Equal(t, "isActive=true", api.Calls()[0].Query)

	_, err = repo.List(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, api.Calls()[1].Query)
}

func TestUpdateUsesPut(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{"PUT /categories/c1": {Body: `{"success":true,"data":{"name":"Dairy"}}`}})
	repo := NewRESTCategoryRepository(api.Client())

	c, err := repo.Update(context.Background(), "c1", domain.CategoryForm{Name: "Dairy", NameAr: "ألبان"})
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "Dairy", c.Name)
}

func TestDeleteVariants(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"DELETE /categories/c1":           {Body: `{"success":true}`},
		"DELETE /categories/c1/permanent": {Body: `{"success":true}`},
		"DELETE /categories/missing":      {Status: http.StatusNotFound, Body: `{"message":"Category not found"}`},
	})
	repo := NewRESTCategoryRepository(api.Client())
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "c1"))
	require.NoError(t, repo.DeletePermanent(ctx, "c1"))
	assert.EqualError(t, repo.Delete(ctx, "missing"), "failed to delete category: Category not found")
}
