package command

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/product/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo    domain.ProductRepository
	effects *mutation.Effects
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository, effects *mutation.Effects) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo, effects: effects}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return err
	}

	h.effects.Committed(ctx, domain.EventProductDeleted, "product", cmd.ID, domain.CachePrefix)
	return nil
}
