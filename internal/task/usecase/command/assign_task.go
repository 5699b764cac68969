package command

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// AssignTaskCommand represents the command to assign a task to a user
type AssignTaskCommand struct {
	ID   string
	Form domain.AssignForm
}

// AssignTaskHandler handles assign task command
type AssignTaskHandler struct {
	repo      domain.TaskRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewAssignTaskHandler creates a new assign task handler
func NewAssignTaskHandler(repo domain.TaskRepository, v *validation.Validator, effects *mutation.Effects) *AssignTaskHandler {
	return &AssignTaskHandler{repo: repo, validator: v, effects: effects}
}

// Handle executes the assign task command
func (h *AssignTaskHandler) Handle(ctx context.Context, cmd AssignTaskCommand) (*domain.Task, error) {
	if err := h.validator.Struct(cmd.Form); err != nil {
		return nil, err
	}

	t, err := h.repo.Assign(ctx, cmd.ID, cmd.Form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventTaskAssigned, "task", cmd.ID, domain.CachePrefix)
	return t, nil
}
