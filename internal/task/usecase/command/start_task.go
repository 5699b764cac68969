package command

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
)

// StartTaskCommand represents the command to start a task
type StartTaskCommand struct {
	ID string
}

// StartTaskHandler handles start task command
type StartTaskHandler struct {
	repo    domain.TaskRepository
	effects *mutation.Effects
}

// NewStartTaskHandler creates a new start task handler
func NewStartTaskHandler(repo domain.TaskRepository, effects *mutation.Effects) *StartTaskHandler {
	return &StartTaskHandler{repo: repo, effects: effects}
}

// Handle executes the start task command
func (h *StartTaskHandler) Handle(ctx context.Context, cmd StartTaskCommand) (*domain.Task, error) {
	t, err := h.repo.Start(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventTaskStarted, "task", cmd.ID, domain.CachePrefix)
	return t, nil
}
