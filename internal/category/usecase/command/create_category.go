package command

import (
	"context"
	"strings"

	"github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// CreateCategoryCommand represents the command to create a category
type CreateCategoryCommand struct {
	Form domain.CategoryForm
}

// CreateCategoryHandler handles category creation command
type CreateCategoryHandler struct {
	repo      domain.CategoryRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository, v *validation.Validator, effects *mutation.Effects) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo, validator: v, effects: effects}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	form := trimForm(cmd.Form)
	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	c, err := h.repo.Create(ctx, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventCategoryCreated, "category", c.ID, domain.CachePrefix)
	return c, nil
}

func trimForm(f domain.CategoryForm) domain.CategoryForm {
	return domain.CategoryForm{
		Name:        strings.TrimSpace(f.Name),
		NameAr:      strings.TrimSpace(f.NameAr),
		Description: strings.TrimSpace(f.Description),
	}
}
