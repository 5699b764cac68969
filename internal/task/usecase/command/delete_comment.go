package command

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
)

// DeleteCommentCommand represents the command to delete a comment
type DeleteCommentCommand struct {
	ID string
}

// DeleteCommentHandler handles delete comment command
type DeleteCommentHandler struct {
	repo    domain.CommentRepository
	effects *mutation.Effects
}

// NewDeleteCommentHandler creates a new delete comment handler
func NewDeleteCommentHandler(repo domain.CommentRepository, effects *mutation.Effects) *DeleteCommentHandler {
	return &DeleteCommentHandler{repo: repo, effects: effects}
}

// Handle executes the delete comment command
func (h *DeleteCommentHandler) Handle(ctx context.Context, cmd DeleteCommentCommand) error {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return err
	}

	h.effects.Committed(ctx, domain.EventCommentDeleted, "comment", cmd.ID, domain.CommentCachePrefix)
	return nil
}
