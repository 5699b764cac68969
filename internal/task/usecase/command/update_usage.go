package command

import (
	"context"

	inventorydomain "github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// UpdateUsageCommand records the stock a task consumed
type UpdateUsageCommand struct {
	ID   string
	Form domain.UsageForm
}

// UpdateUsageHandler handles inventory usage command
type UpdateUsageHandler struct {
	repo      domain.TaskRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewUpdateUsageHandler creates a new usage handler
func NewUpdateUsageHandler(repo domain.TaskRepository, v *validation.Validator, effects *mutation.Effects) *UpdateUsageHandler {
	return &UpdateUsageHandler{repo: repo, validator: v, effects: effects}
}

// Handle sends the usage and drops cached stock levels along with the tasks
func (h *UpdateUsageHandler) Handle(ctx context.Context, cmd UpdateUsageCommand) (*domain.Task, error) {
	if err := h.validator.Struct(cmd.Form); err != nil {
		return nil, err
	}

	t, err := h.repo.UpdateUsage(ctx, cmd.ID, cmd.Form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventTaskUsageUpdated, "task", cmd.ID, domain.CachePrefix, inventorydomain.CachePrefix)
	return t, nil
}
