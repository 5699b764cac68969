package command

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// UpdateCategoryCommand represents the command to update a category
type UpdateCategoryCommand struct {
	ID   string
	Form domain.CategoryForm
}

// UpdateCategoryHandler handles category update command
type UpdateCategoryHandler struct {
	repo      domain.CategoryRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(repo domain.CategoryRepository, v *validation.Validator, effects *mutation.Effects) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo, validator: v, effects: effects}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	form := trimForm(cmd.Form)
	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	c, err := h.repo.Update(ctx, cmd.ID, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventCategoryUpdated, "category", cmd.ID, domain.CachePrefix)
	return c, nil
}
