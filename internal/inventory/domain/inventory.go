package domain

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
)

// Activity event types
const (
	EventItemCreated   = "inventory.created"
	EventItemUpdated   = "inventory.updated"
	EventItemRestocked = "inventory.restocked"
)

const CachePrefix = "inventory"

// Stock statuses as computed by the API.
const (
	StatusInStock    = "in_stock"
	StatusLowStock   = "low_stock"
	StatusOutOfStock = "out_of_stock"
)

// Item is an ingredient or supply tracked in stock.
type Item struct {
	apiclient.Identity
	Name            string    `json:"name"`
	NameAr          string    `json:"nameAr,omitempty"`
	Category        string    `json:"category"`
	Unit            string    `json:"unit"`
	CurrentQuantity float64   `json:"currentQuantity"`
	MinThreshold    float64   `json:"minThreshold"`
	MaxThreshold    float64   `json:"maxThreshold"`
	Supplier        string    `json:"supplier,omitempty"`
	Cost            *float64  `json:"cost,omitempty"`
	Image           string    `json:"image,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// StockPercentage is round(current / max * 100); 0 when max is not positive.
func (i Item) StockPercentage() int {
	if i.MaxThreshold <= 0 {
		return 0
	}
	return int(math.Round(i.CurrentQuantity / i.MaxThreshold * 100))
}

// BarWidth is StockPercentage capped to the 0..100 range of a progress bar.
func (i Item) BarWidth() int {
	return min(max(i.StockPercentage(), 0), 100)
}

// NeedsAttention reports whether the API flagged the item as low or out.
func (i Item) NeedsAttention() bool {
	return i.Status == StatusLowStock || i.Status == StatusOutOfStock
}

// FilterByName keeps the items whose name contains term, ignoring case.
func FilterByName(items []Item, term string) []Item {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), term) || strings.Contains(strings.ToLower(it.NameAr), term) {
			out = append(out, it)
		}
	}
	return out
}

// ItemForm is used for both create and update.
type ItemForm struct {
	Name            string   `json:"name" validate:"min=2" message:"Name must be at least 2 characters"`
	NameAr          string   `json:"nameAr,omitempty"`
	Category        string   `json:"category" validate:"min=2" message:"Category is required"`
	Unit            string   `json:"unit" validate:"min=1" message:"Unit is required"`
	CurrentQuantity float64  `json:"currentQuantity" validate:"gte=0" message:"Quantity must be 0 or greater"`
	MinThreshold    float64  `json:"minThreshold" validate:"gte=0" message:"Min threshold must be 0 or greater"`
	MaxThreshold    float64  `json:"maxThreshold" validate:"gte=1,gtfield=MinThreshold" message:"gtfield=Max threshold must be greater than min threshold;Max threshold must be at least 1"`
	Supplier        string   `json:"supplier,omitempty"`
	Cost            *float64 `json:"cost,omitempty" validate:"omitempty,gte=0" message:"Cost must be 0 or greater"`

	// Image switches the request to multipart when set.
	Image *apiclient.File `json:"-"`
}

type RestockForm struct {
	Quantity float64 `json:"quantity" validate:"gt=0" message:"Quantity must be greater than 0"`
}

// InventoryRepository reads and writes stock items through the API.
type InventoryRepository interface {
	List(ctx context.Context) ([]Item, error)
	LowStock(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, form ItemForm) (*Item, error)
	Update(ctx context.Context, id string, form ItemForm) (*Item, error)
	Restock(ctx context.Context, id string, form RestockForm) (*Item, error)
}
