package command

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// RestockItemCommand adds Quantity to an item's stock
type RestockItemCommand struct {
	ID       string
	Quantity float64
}

// RestockItemHandler handles the restock command
type RestockItemHandler struct {
	repo      domain.InventoryRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewRestockItemHandler creates a new restock handler
func NewRestockItemHandler(repo domain.InventoryRepository, v *validation.Validator, effects *mutation.Effects) *RestockItemHandler {
	return &RestockItemHandler{repo: repo, validator: v, effects: effects}
}

// Handle executes the restock command
func (h *RestockItemHandler) Handle(ctx context.Context, cmd RestockItemCommand) (*domain.Item, error) {
	form := domain.RestockForm{Quantity: cmd.Quantity}
	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	it, err := h.repo.Restock(ctx, cmd.ID, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventItemRestocked, "inventory", cmd.ID, domain.CachePrefix)
	return it, nil
}
