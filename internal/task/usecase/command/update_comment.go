package command

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// UpdateCommentCommand represents the command to edit a comment
type UpdateCommentCommand struct {
	ID   string
	Form domain.CommentForm
}

// UpdateCommentHandler handles update comment command
type UpdateCommentHandler struct {
	repo      domain.CommentRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewUpdateCommentHandler creates a new update comment handler
func NewUpdateCommentHandler(repo domain.CommentRepository, v *validation.Validator, effects *mutation.Effects) *UpdateCommentHandler {
	return &UpdateCommentHandler{repo: repo, validator: v, effects: effects}
}

// Handle executes the update comment command
func (h *UpdateCommentHandler) Handle(ctx context.Context, cmd UpdateCommentCommand) (*domain.Comment, error) {
	form := trimComment(cmd.Form)
	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	c, err := h.repo.Update(ctx, cmd.ID, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventCommentUpdated, "comment", cmd.ID, domain.CommentCachePrefix)
	return c, nil
}
