package command

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
)

// DeleteCategoryCommand represents the command to delete a category. Permanent
// removes the record instead of deactivating it.
type DeleteCategoryCommand struct {
	ID        string
	Permanent bool
}

// DeleteCategoryHandler handles category deletion command
type DeleteCategoryHandler struct {
	repo    domain.CategoryRepository
	effects *mutation.Effects
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(repo domain.CategoryRepository, effects *mutation.Effects) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{repo: repo, effects: effects}
}

// Handle executes the delete category command
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	var err error
	if cmd.Permanent {
		err = h.repo.DeletePermanent(ctx, cmd.ID)
	} else {
		err = h.repo.Delete(ctx, cmd.ID)
	}
	if err != nil {
		return err
	}

	h.effects.Committed(ctx, domain.EventCategoryDeleted, "category", cmd.ID, domain.CachePrefix)
	return nil
}
