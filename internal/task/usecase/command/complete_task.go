package command

import (
	"context"
	"strings"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
)

// CompleteTaskCommand represents the command to complete a task
type CompleteTaskCommand struct {
	ID    string
	Notes string
}

// CompleteTaskHandler handles complete task command
type CompleteTaskHandler struct {
	repo    domain.TaskRepository
	effects *mutation.Effects
}

// NewCompleteTaskHandler creates a new complete task handler
func NewCompleteTaskHandler(repo domain.TaskRepository, effects *mutation.Effects) *CompleteTaskHandler {
	return &CompleteTaskHandler{repo: repo, effects: effects}
}

// Handle executes the complete task command
func (h *CompleteTaskHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) (*domain.Task, error) {
	t, err := h.repo.Complete(ctx, cmd.ID, domain.CompleteForm{Notes: strings.TrimSpace(cmd.Notes)})
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventTaskCompleted, "task", cmd.ID, domain.CachePrefix)
	return t, nil
}
