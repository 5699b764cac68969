package command

import (
	"context"
	"strings"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// AddCommentCommand represents the command to comment on a task
type AddCommentCommand struct {
	TaskID string
	Form   domain.CommentForm
}

// AddCommentHandler handles add comment command
type AddCommentHandler struct {
	repo      domain.CommentRepository
	validator *validation.Validator
	effects   *mutation.Effects
}

// NewAddCommentHandler creates a new add comment handler
func NewAddCommentHandler(repo domain.CommentRepository, v *validation.Validator, effects *mutation.Effects) *AddCommentHandler {
	return &AddCommentHandler{repo: repo, validator: v, effects: effects}
}

// Handle executes the add comment command
func (h *AddCommentHandler) Handle(ctx context.Context, cmd AddCommentCommand) (*domain.Comment, error) {
	form := trimComment(cmd.Form)
	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	c, err := h.repo.Add(ctx, cmd.TaskID, form)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventCommentAdded, "comment", c.ID, domain.CommentCachePrefix, domain.CachePrefix)
	return c, nil
}

func trimComment(f domain.CommentForm) domain.CommentForm {
	f.Comment = strings.TrimSpace(f.Comment)
	attachments := make([]string, 0, len(f.Attachments))
	for _, a := range f.Attachments {
		if a = strings.TrimSpace(a); a != "" {
			attachments = append(attachments, a)
		}
	}
	f.Attachments = attachments
	return f
}
