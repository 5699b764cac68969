package command

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
)

// MarkTaskLateCommand represents the command to flag a task as late
type MarkTaskLateCommand struct {
	ID string
}

// MarkTaskLateHandler handles mark late command
type MarkTaskLateHandler struct {
	repo    domain.TaskRepository
	effects *mutation.Effects
}

// NewMarkTaskLateHandler creates a new mark late handler
func NewMarkTaskLateHandler(repo domain.TaskRepository, effects *mutation.Effects) *MarkTaskLateHandler {
	return &MarkTaskLateHandler{repo: repo, effects: effects}
}

// Handle executes the mark late command
func (h *MarkTaskLateHandler) Handle(ctx context.Context, cmd MarkTaskLateCommand) (*domain.Task, error) {
	t, err := h.repo.MarkLate(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventTaskMarkedLate, "task", cmd.ID, domain.CachePrefix)
	return t, nil
}
