package command

import (
	"context"
	"strings"

	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// CreateItemCommand represents the command to create an inventory item
type CreateItemCommand struct {
	Form domain.ItemForm
}

// CreateItemHandler handles inventory item creation command
type CreateItemHandler struct {
	repo      domain.InventoryRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.InventoryRepository, v *validation.Validator, effects *mutation.Effects) *CreateItemHandler {
	return &CreateItemHandler{repo: repo, validator: v, effects: effects}
}

// Handle validates the form before any call and creates the item
func (h *CreateItemHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*domain.Item, error) {
	form := trimForm(cmd.Form)
	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	it, err := h.repo.Create(ctx, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventItemCreated, "inventory", it.ID, domain.CachePrefix)
	return it, nil
}

func trimForm(f domain.ItemForm) domain.ItemForm {
	f.Name = strings.TrimSpace(f.Name)
	f.NameAr = strings.TrimSpace(f.NameAr)
	f.Category = strings.TrimSpace(f.Category)
	f.Unit = strings.TrimSpace(f.Unit)
	f.Supplier = strings.TrimSpace(f.Supplier)
	return f
}
