package domain

import (
	"context"
	"time"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
)

// Activity event types
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

const CachePrefix = "products"

// Units accepted for a recipe ingredient.
var Units = []string{"kg", "g", "l", "ml", "pcs", "cup", "tbsp", "tsp"}

// RequiredIngredient is one line of a recipe.
type RequiredIngredient struct {
	IngredientID string  `json:"ingredientId"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

// Product is a recipe prepared on a fixed interval.
type Product struct {
	apiclient.Identity
	Name                string               `json:"name"`
	NameAr              string               `json:"nameAr,omitempty"`
	Category            string               `json:"category"`
	Description         string               `json:"description,omitempty"`
	PrepTimeMinutes     int                  `json:"prepTimeMinutes"`
	PrepIntervalHours   int                  `json:"prepIntervalHours"`
	IsActive            *bool                `json:"isActive,omitempty"`
	Image               string               `json:"image,omitempty"`
	Ingredients         []RequiredIngredient `json:"ingredients"`
	RequiredIngredients []RequiredIngredient `json:"requiredIngredients,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// NormalizeID settles the identifier and the ingredient list, which the API
// returns as either ingredients or requiredIngredients. A present ingredients
// array wins even when it is empty.
func (p *Product) NormalizeID() {
	p.Identity.NormalizeID()
	switch {
	case p.Ingredients != nil:
	case p.RequiredIngredients != nil:
		p.Ingredients = p.RequiredIngredients
	default:
		p.Ingredients = []RequiredIngredient{}
	}
	p.RequiredIngredients = nil
}

func (p Product) Active() bool {
	return p.IsActive == nil || *p.IsActive
}

// ListFilter narrows the product list on the API side.
type ListFilter struct {
	Search   string
	IsActive *bool
	Category string
}

type IngredientForm struct {
	IngredientID string  `json:"ingredientId" validate:"required" message:"Ingredient is required"`
	Name         string  `json:"name" validate:"required" message:"Name is required"`
	Quantity     float64 `json:"quantity" validate:"gte=0.01" message:"Quantity must be greater than 0"`
	Unit         string  `json:"unit" validate:"oneof=kg g l ml pcs cup tbsp tsp" message:"Select a unit"`
}

// ProductForm is used for both create and update.
type ProductForm struct {
	Name              string           `json:"name" validate:"min=2" message:"Name must be at least 2 characters"`
	NameAr            string           `json:"nameAr,omitempty"`
	Category          string           `json:"category" validate:"min=2" message:"Category is required"`
	Description       string           `json:"description,omitempty"`
	PrepTimeMinutes   int              `json:"prepTimeMinutes" validate:"gte=1" message:"Prep time must be at least 1 minute"`
	PrepIntervalHours int              `json:"prepIntervalHours" validate:"gte=1" message:"Interval must be at least 1 hour"`
	IsActive          bool             `json:"isActive"`
	Ingredients       []IngredientForm `json:"ingredients" validate:"min=1,dive" message:"At least one ingredient is required"`

	Image *apiclient.File `json:"-"`
}

// ProductRepository reads and writes products through the API.
type ProductRepository interface {
	List(ctx context.Context, filter ListFilter) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, form ProductForm) (*Product, error)
	Update(ctx context.Context, id string, form ProductForm) (*Product, error)
	Delete(ctx context.Context, id string) error
}
