package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient/apitest"
	authrepo "github.com/Nawaf-Almansour/prep-manger/internal/auth/repository"
	categoryrepo "github.com/Nawaf-Almansour/prep-manger/internal/category/repository"
	inventorydomain "github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	inventoryrepo "github.com/Nawaf-Almansour/prep-manger/internal/inventory/repository"
	productdomain "github.com/Nawaf-Almansour/prep-manger/internal/product/domain"
	productrepo "github.com/Nawaf-Almansour/prep-manger/internal/product/repository"
)

func newSeeder(api *apitest.Server, out *bytes.Buffer, now time.Time) *Seeder {
	client := api.Client()
	return NewSeeder(client, Repositories{
		Auth:       authrepo.NewRESTAuthRepository(client),
		Categories: categoryrepo.NewRESTCategoryRepository(client),
		Inventory:  inventoryrepo.NewRESTInventoryRepository(client),
		Products:   productrepo.NewRESTProductRepository(client),
	}, NewReporter(out), Options{
		Email:    "john.manager@test.com",
		Password: "password123",
		Now:      func() time.Time { return now },
	})
}

func inventoryBody(t *testing.T) string {
	t.Helper()
	items := make([]map[string]any, 0, len(InventoryItems))
	for i, it := range InventoryItems {
		items = append(items, map[string]any{"_id": fmt.Sprintf("item-%d", i), "name": it.Name, "unit": it.Unit})
	}
	data, err := json.Marshal(map[string]any{"data": items})
	require.NoError(t, err)
	return string(data)
}

func TestRun(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"POST /auth/login":                 {Body: `{"data":{"token":"tok","user":{"_id":"u1","name":"John","role":"manager"}}}`},
		"GET /categories":                  {Body: `{"data":{"categories":[{"_id":"old","name":"Old"}]}}`},
		"DELETE /categories/old/permanent": {Body: `{"success":true}`},
		"POST /categories":                 {Status: http.StatusCreated, Body: `{"data":{"category":{"_id":"c1"}}}`},
		"POST /inventory":                  {Status: http.StatusCreated, Body: `{"data":{"_id":"new-item"}}`},
		"GET /inventory":                   {Body: inventoryBody(t)},
		"POST /products":                   {Status: http.StatusCreated, Body: `{"data":{"_id":"new-product"}}`},
		"GET /products": {Body: `{"data":{"products":[
			{"_id":"p1","name":"Fresh Coffee","prepIntervalHours":2,"prepTimeMinutes":10},
			{"_id":"p2","name":"Iced Tea","prepIntervalHours":4,"prepTimeMinutes":20}
		]}}`},
		"POST /tasks": {Status: http.StatusCreated, Body: `{"data":{"_id":"t"}}`},
	})
	var out bytes.Buffer
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	sum, err := newSeeder(api, &out, now).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Summary{Categories: 8, Items: len(InventoryItems), Products: 2, Tasks: 6, TasksPlanned: 6}, sum)

	var productPosts, taskPosts int
	for _, c := range api.Calls() {
		if c.Method == http.MethodPost && c.Path != "/auth/login" {
			assert.Equal(t, "Bearer tok", c.Auth, c.Path)
		}
		switch {
		case c.Method == http.MethodPost && c.Path == "/products":
			productPosts++
		case c.Method == http.MethodPost && c.Path == "/tasks":
			if taskPosts == 0 {
				body := c.JSON(t)
				assert.Equal(t, "p1", body["productId"])
				assert.Equal(t, "completed", body["status"])
				assert.Equal(t, "2026-03-01T10:00:00Z", body["scheduledTime"])
			}
			taskPosts++
		}
	}
	assert.Equal(t, len(Recipes), productPosts)
	assert.Equal(t, 6, taskPosts)
	assert.Contains(t, out.String(), "Caesar Salad")
}

func TestRunStopsWhenLoginFails(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"POST /auth/login": {Status: http.StatusUnauthorized, Body: `{"message":"Invalid credentials"}`},
	})
	var out bytes.Buffer

	_, err := newSeeder(api, &out, time.Now()).Run(context.Background())

	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.Len(t, api.Calls(), 1)
	assert.Contains(t, out.String(), "Invalid credentials")
}

func TestRunStopsWithoutInventory(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"POST /auth/login": {Body: `{"token":"tok","user":{"id":"u1"}}`},
		"GET /categories":  {Body: `{"data":[]}`},
		"POST /categories": {Body: `{"data":{"_id":"c1"}}`},
		"POST /inventory":  {Status: http.StatusInternalServerError, Body: `{"message":"E11000 duplicate key error"}`},
		"GET /inventory":   {Status: http.StatusInternalServerError, Body: `{"message":"boom"}`},
	})
	var out bytes.Buffer

	sum, err := newSeeder(api, &out, time.Now()).Run(context.Background())

	assert.ErrorIs(t, err, ErrNoInventory)
	assert.Equal(t, 8, sum.Categories)
	assert.Zero(t, sum.Items)
	assert.Contains(t, out.String(), "Lettuce already exists")
}

func TestIsDuplicate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"mongo code", &apiclient.APIError{StatusCode: 500, Message: "E11000 duplicate key"}, true},
		{"already exists", &apiclient.APIError{StatusCode: 400, Message: "Item already exists"}, true},
		{"500 message from server", &apiclient.APIError{StatusCode: 500, Message: "Internal Server Error"}, true},
		{"500 without body", &apiclient.APIError{StatusCode: 500, Message: "Internal Server Error", StatusOnly: true}, false},
		{"code in stack", &apiclient.APIError{StatusCode: 500, Message: "Oops", Stack: "MongoServerError: E11000"}, true},
		{"wrapped", fmt.Errorf("failed to create item: %w", &apiclient.APIError{StatusCode: 409, Message: "duplicate name"}), true},
		{"validation", &apiclient.APIError{StatusCode: 400, Message: "Name is required"}, false},
		{"network", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicate(tt.err))
		})
	}
}

func TestIsDuplicateFromResponses(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"POST /named": {Status: http.StatusInternalServerError, Body: `{"message":"Internal Server Error"}`},
		"POST /empty": {Status: http.StatusInternalServerError},
	})
	client := api.Client()

	_, err := client.Post(context.Background(), "/named", map[string]string{})
	assert.True(t, IsDuplicate(err))

	_, err = client.Post(context.Background(), "/empty", map[string]string{})
	require.Error(t, err)
	assert.False(t, IsDuplicate(err))
}

func TestBuildProductsDropsUnresolvedRecipes(t *testing.T) {
	items := []inventorydomain.Item{}
	for i, it := range InventoryItems {
		if it.Name == "Coffee Beans" {
			continue
		}
		item := inventorydomain.Item{Name: it.Name}
		item.ID = fmt.Sprintf("item-%d", i)
		items = append(items, item)
	}

	forms := BuildProducts(items)

	// Tiramisu and Fresh Coffee both need coffee beans.
	assert.Len(t, forms, len(Recipes)-2)
	for _, f := range forms {
		assert.NotEqual(t, "Tiramisu", f.Name)
		assert.True(t, f.IsActive)
		for _, ing := range f.Ingredients {
			assert.NotEmpty(t, ing.IngredientID)
		}
	}
}

func TestBuildTasks(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := productdomain.Product{Name: "Iced Tea", PrepIntervalHours: 4}
	p.ID = "p2"

	tasks := BuildTasks([]productdomain.Product{p}, now)

	require.Len(t, tasks, 3)
	assert.Equal(t, "completed", tasks[0].Status)
	assert.Equal(t, now.Add(-4*time.Hour), tasks[0].ScheduledTime)
	require.NotNil(t, tasks[0].CompletedAt)
	assert.Equal(t, now.Add(2*time.Hour), tasks[1].ScheduledTime)
	assert.Equal(t, now.Add(4*time.Hour), tasks[2].ScheduledTime)
	assert.Equal(t, 30, tasks[2].PrepTimeMinutes)
	assert.Nil(t, tasks[2].CompletedAt)
}
