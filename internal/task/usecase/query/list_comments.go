package query

import (
	"context"

	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
)

// ListCommentsQuery lists the comments of one task
type ListCommentsQuery struct {
	TaskID string
}

// ListCommentsHandler handles list comments query
type ListCommentsHandler struct {
	repo  domain.CommentRepository
	cache *querycache.Cache
}

// NewListCommentsHandler creates a new list comments handler
func NewListCommentsHandler(repo domain.CommentRepository, cache *querycache.Cache) *ListCommentsHandler {
	return &ListCommentsHandler{repo: repo, cache: cache}
}

// Handle executes the list comments query
func (h *ListCommentsHandler) Handle(ctx context.Context, q ListCommentsQuery) ([]domain.Comment, error) {
	key := querycache.Key(ctx, domain.CommentCachePrefix, "task", q.TaskID)
	return querycache.Fetch(ctx, h.cache, key, func(ctx context.Context) ([]domain.Comment, error) {
		return h.repo.List(ctx, q.TaskID)
	})
}
