package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient/apitest"
	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/repository"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

func validForm() domain.ItemForm {
	return domain.ItemForm{Name: "Rice", Category: "Grains", Unit: "kg", CurrentQuantity: 10, MinThreshold: 5, MaxThreshold: 50}
}

func TestItemFormThresholds(t *testing.T) {
	tests := []struct {
		name    string
		min     float64
		max     float64
		message string
	}{
		{"max equals min", 10, 10, "Max threshold must be greater than min threshold"},
		{"max below min", 20, 10, "Max threshold must be greater than min threshold"},
		{"max below one", 0, 0.5, "Max threshold must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := apitest.New(t, nil)
			h := NewCreateItemHandler(repository.NewRESTInventoryRepository(api.Client()), validation.New(), nil)

			form := validForm()
			form.MinThreshold, form.MaxThreshold = tt.min, tt.max
			_, err := h.Handle(context.Background(), CreateItemCommand{Form: form})

			errs, ok := validation.AsErrors(err)
			require.True(t, ok, "expected validation errors, got %v", err)
			assert.Equal(t, tt.message, errs.Get("maxThreshold"))
			assert.Empty(t, api.Calls(), "no request may reach the API")
		})
	}
}

func TestUpdateItemRejectsBeforeNetwork(t *testing.T) {
	api := apitest.New(t, nil)
	h := NewUpdateItemHandler(repository.NewRESTInventoryRepository(api.Client()), validation.New(), nil)

	form := validForm()
	form.Name = "R"
	form.Category = ""
	form.Unit = ""
	form.CurrentQuantity = -1
	cost := -3.0
	form.Cost = &cost

	_, err := h.Handle(context.Background(), UpdateItemCommand{ID: "i1", Form: form})
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "Name must be at least 2 characters", errs.Get("name"))
	assert.Equal(t, "Category is required", errs.Get("category"))
	assert.Equal(t, "Unit is required", errs.Get("unit"))
	assert.Equal(t, "Quantity must be 0 or greater", errs.Get("currentQuantity"))
	assert.Equal(t, "Cost must be 0 or greater", errs.Get("cost"))
	assert.Empty(t, api.Calls())
}

func TestCreateItemSucceeds(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{"POST /inventory": {Body: `{"data":{"item":{"_id":"i1","name":"Rice"}}}`}})
	h := NewCreateItemHandler(repository.NewRESTInventoryRepository(api.Client()), validation.New(), nil)

	form := validForm()
	form.Name = "  Rice  "
	it, err := h.Handle(context.Background(), CreateItemCommand{Form: form})
	require.NoError(t, err)
	assert.Equal(t, "i1", it.ID)
	assert.Equal(t, "Rice", api.Calls()[0].JSON(t)["name"])
}

func TestRestockRequiresPositiveQuantity(t *testing.T) {
	api := apitest.New(t, nil)
	h := NewRestockItemHandler(repository.NewRESTInventoryRepository(api.Client()), validation.New(), nil)

	for _, qty := range []float64{0, -5} {
		_, err := h.Handle(context.Background(), RestockItemCommand{ID: "i1", Quantity: qty})
		errs, ok := validation.AsErrors(err)
		require.True(t, ok)
		assert.Equal(t, "Quantity must be greater than 0", errs.Get("quantity"))
	}
	assert.Empty(t, api.Calls())
}
