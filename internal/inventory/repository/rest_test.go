package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient/apitest"
	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
)

func TestListReadsDataItems(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"GET /inventory":           {Body: `{"success":true,"data":{"items":[{"_id":"i1","name":"Rice","currentQuantity":20,"maxThreshold":40,"status":"in_stock"}]}}`},
		"GET /inventory/low-stock": {Body: `{"data":{"items":[]}}`},
	})
	repo := NewRESTInventoryRepositoryWithTracing(api.Client())

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "i1", items[0].ID)
	assert.Equal(t, 50, items[0].StockPercentage())

	low, err := repo.LowStock(context.Background())
	require.NoError(t, err)
	assert.Empty(t, low)
}

func TestGetItemShapes(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"GET /inventory/i1": {Body: `{"data":{"item":{"_id":"i1","name":"Rice"}}}`},
		"GET /inventory/i2": {Body: `{"item":{"id":"i2","name":"Oil"}}`},
		"GET /inventory/i3": {Body: `{"data":{"data":{"name":"Salt"}}}`},
	})
	repo := NewRESTInventoryRepository(api.Client())
	ctx := context.Background()

	it, err := repo.Get(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "Rice", it.Name)

	it, err = repo.Get(ctx, "i2")
	require.NoError(t, err)
	assert.Equal(t, "i2", it.ID)

	it, err = repo.Get(ctx, "i3")
	require.NoError(t, err)
	assert.Equal(t, "Salt", it.Name)
	assert.Equal(t, "i3", it.ID)
}

func TestCreateJSONOmitsEmptyOptionals(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{"POST /inventory": {Body: `{"data":{"item":{"_id":"i9"}}}`}})
	repo := NewRESTInventoryRepository(api.Client())

	_, err := repo.Create(context.Background(), domain.ItemForm{
		Name: "Rice", Category: "Grains", Unit: "kg", CurrentQuantity: 10, MinThreshold: 5, MaxThreshold: 50,
	})
	require.NoError(t, err)

	call := api.Calls()[0]
	assert.Equal(t, "application/json", call.ContentType)
	body := call.JSON(t)
	assert.Equal(t, 50.0, body["maxThreshold"])
	assert.NotContains(t, body, "cost")
	assert.NotContains(t, body, "supplier")
	assert.NotContains(t, body, "nameAr")
}

func TestUpdateWithImageIsMultipart(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{"PATCH /inventory/i1": {Body: `{"data":{"item":{"_id":"i1"}}}`}})
	repo := NewRESTInventoryRepository(api.Client())

	cost := 2.5
	_, err := repo.Update(context.Background(), "i1", domain.ItemForm{
		Name: "Rice", Category: "Grains", Unit: "kg", CurrentQuantity: 10.5, MinThreshold: 5, MaxThreshold: 50, Cost: &cost,
		Image: &apiclient.File{FileName: "rice.png", ContentType: "image/png", Data: []byte("png")},
	})
	require.NoError(t, err)

	call := api.Calls()[0]
	assert.True(t, strings.HasPrefix(call.ContentType, "multipart/form-data"))
	body := string(call.Body)
	assert.Contains(t, body, `name="currentQuantity"`)
	assert.Contains(t, body, "10.5")
	assert.Contains(t, body, `name="cost"`)
	assert.Contains(t, body, `filename="rice.png"`)
	assert.NotContains(t, body, `name="supplier"`)
}

func TestRestock(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{"PATCH /inventory/i1/restock": {Body: `{"data":{"item":{"_id":"i1","currentQuantity":30}}}`}})
	repo := NewRESTInventoryRepository(api.Client())

	it, err := repo.Restock(context.Background(), "i1", domain.RestockForm{Quantity: 20})
	require.NoError(t, err)
	assert.Equal(t, 30.0, it.CurrentQuantity)
	assert.Equal(t, 20.0, api.Calls()[0].JSON(t)["quantity"])
}
