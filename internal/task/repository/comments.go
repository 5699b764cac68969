package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
)

// RESTCommentRepository implements domain.CommentRepository.
type RESTCommentRepository struct {
	api *apiclient.Client
}

func NewRESTCommentRepository(api *apiclient.Client) *RESTCommentRepository {
	return &RESTCommentRepository{api: api}
}

func (r *RESTCommentRepository) List(ctx context.Context, taskID string) ([]domain.Comment, error) {
	resp, err := r.api.Get(ctx, taskPath(taskID)+"/comments", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	var comments []domain.Comment
	if err := resp.DecodeList(&comments, "comments"); err != nil {
		return nil, err
	}
	return apiclient.NormalizeIDs(comments), nil
}

func (r *RESTCommentRepository) Add(ctx context.Context, taskID string, form domain.CommentForm) (*domain.Comment, error) {
	resp, err := r.api.Post(ctx, taskPath(taskID)+"/comments", form)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return decodeComment(resp, "")
}

// Update sends only the text; attachments are fixed once posted.
func (r *RESTCommentRepository) Update(ctx context.Context, id string, form domain.CommentForm) (*domain.Comment, error) {
	resp, err := r.api.Put(ctx, commentPath(id), map[string]string{"comment": form.Comment})
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return decodeComment(resp, id)
}

func (r *RESTCommentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.api.Delete(ctx, commentPath(id)); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func commentPath(id string) string {
	return "/comments/" + url.PathEscape(id)
}

func decodeComment(resp *apiclient.Response, fallbackID string) (*domain.Comment, error) {
	var c domain.Comment
	if err := resp.DecodeOne(&c, "comment"); err != nil {
		return nil, err
	}
	c.NormalizeID()
	if c.ID == "" {
		c.ID = fallbackID
	}
	return &c, nil
}
