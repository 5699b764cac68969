package command

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// UpdateItemCommand represents the command to update an inventory item
type UpdateItemCommand struct {
	ID   string
	Form domain.ItemForm
}

// UpdateItemHandler handles inventory item update command
type UpdateItemHandler struct {
	repo      domain.InventoryRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.InventoryRepository, v *validation.Validator, effects *mutation.Effects) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo, validator: v, effects: effects}
}

// Handle validates the form before any call and updates the item
func (h *UpdateItemHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*domain.Item, error) {
	form := trimForm(cmd.Form)
	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	it, err := h.repo.Update(ctx, cmd.ID, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventItemUpdated, "inventory", cmd.ID, domain.CachePrefix)
	return it, nil
}
