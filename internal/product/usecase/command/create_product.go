package command

import (
	"context"
	"strings"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/product/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// CreateProductCommand represents the command to create a product
type CreateProductCommand struct {
	Form domain.ProductForm
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo      domain.ProductRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository, v *validation.Validator, effects *mutation.Effects) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, validator: v, effects: effects}
}

// Handle validates the recipe before any call and creates the product
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	form := trimForm(cmd.Form)
	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	p, err := h.repo.Create(ctx, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventProductCreated, "product", p.ID, domain.CachePrefix)
	return p, nil
}

func trimForm(f domain.ProductForm) domain.ProductForm {
	f.Name = strings.TrimSpace(f.Name)
	f.NameAr = strings.TrimSpace(f.NameAr)
	f.Category = strings.TrimSpace(f.Category)
	f.Description = strings.TrimSpace(f.Description)

	ingredients := make([]domain.IngredientForm, len(f.Ingredients))
	for i, ing := range f.Ingredients {
		ing.IngredientID = strings.TrimSpace(ing.IngredientID)
		ing.Name = strings.TrimSpace(ing.Name)
		ing.Unit = strings.TrimSpace(ing.Unit)
		ingredients[i] = ing
	}
	f.Ingredients = ingredients
	return f
}
