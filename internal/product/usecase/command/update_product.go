package command

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/product/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// UpdateProductCommand represents the command to update a product
type UpdateProductCommand struct {
	ID   string
	Form domain.ProductForm
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo      domain.ProductRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository, v *validation.Validator, effects *mutation.Effects) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo, validator: v, effects: effects}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	form := trimForm(cmd.Form)
	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	p, err := h.repo.Update(ctx, cmd.ID, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventProductUpdated, "product", cmd.ID, domain.CachePrefix)
	return p, nil
}
