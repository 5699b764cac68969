package domain

import (
	"context"
	"time"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
)

// Activity event types
const (
	EventCategoryCreated = "category.created"
	EventCategoryUpdated = "category.updated"
	EventCategoryDeleted = "category.deleted"
)

const CachePrefix = "categories"

// Category groups inventory items and products.
type Category struct {
	apiclient.Identity
	Name        string    `json:"name"`
	NameAr      string    `json:"nameAr"`
	Description string    `json:"description,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c Category) Active() bool {
	return c.IsActive == nil || *c.IsActive
}

// CategoryForm is used for both create and update.
type CategoryForm struct {
	Name        string `json:"name" validate:"notblank" message:"English name is required"`
	NameAr      string `json:"nameAr" validate:"notblank" message:"Arabic name is required"`
	Description string `json:"description,omitempty"`
}

// CategoryRepository reads and writes categories through the API.
type CategoryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]Category, error)
	Create(ctx context.Context, form CategoryForm) (*Category, error)
	Update(ctx context.Context, id string, form CategoryForm) (*Category, error)
	Delete(ctx context.Context, id string) error
	DeletePermanent(ctx context.Context, id string) error
}
