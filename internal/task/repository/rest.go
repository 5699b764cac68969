package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
)

// RESTTaskRepository implements domain.TaskRepository over /tasks.
type RESTTaskRepository struct {
	api *apiclient.Client
}

func NewRESTTaskRepository(api *apiclient.Client) *RESTTaskRepository {
	return &RESTTaskRepository{api: api}
}

func (r *RESTTaskRepository) All(ctx context.Context) ([]domain.Task, error) {
	return r.list(ctx, "/tasks/all")
}

func (r *RESTTaskRepository) Today(ctx context.Context) ([]domain.Task, error) {
	return r.list(ctx, "/tasks/today")
}

func (r *RESTTaskRepository) Mine(ctx context.Context) ([]domain.Task, error) {
	return r.list(ctx, "/tasks/my-tasks")
}

func (r *RESTTaskRepository) ByStatus(ctx context.Context, status string) ([]domain.Task, error) {
	return r.list(ctx, "/tasks/status/"+url.PathEscape(status))
}

func (r *RESTTaskRepository) ByProduct(ctx context.Context, productID string) ([]domain.Task, error) {
	return r.list(ctx, "/tasks/product/"+url.PathEscape(productID))
}

func (r *RESTTaskRepository) list(ctx context.Context, path string) ([]domain.Task, error) {
	resp, err := r.api.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	var tasks []domain.Task
	if err := resp.DecodeList(&tasks, "tasks"); err != nil {
		return nil, err
	}
	return apiclient.NormalizeIDs(tasks), nil
}

func (r *RESTTaskRepository) Get(ctx context.Context, id string) (*domain.Task, error) {
	resp, err := r.api.Get(ctx, taskPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return decodeTask(resp, id)
}

func (r *RESTTaskRepository) Create(ctx context.Context, req domain.CreateTaskRequest) (*domain.Task, error) {
	resp, err := r.api.Post(ctx, "/tasks", req)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return decodeTask(resp, "")
}

func (r *RESTTaskRepository) Start(ctx context.Context, id string) (*domain.Task, error) {
	return r.transition(ctx, id, "start", nil)
}

func (r *RESTTaskRepository) Complete(ctx context.Context, id string, form domain.CompleteForm) (*domain.Task, error) {
	return r.transition(ctx, id, "complete", form)
}

func (r *RESTTaskRepository) Assign(ctx context.Context, id string, form domain.AssignForm) (*domain.Task, error) {
	return r.transition(ctx, id, "assign", form)
}

func (r *RESTTaskRepository) MarkLate(ctx context.Context, id string) (*domain.Task, error) {
	return r.transition(ctx, id, "late", nil)
}

func (r *RESTTaskRepository) UpdateUsage(ctx context.Context, id string, form domain.UsageForm) (*domain.Task, error) {
	return r.transition(ctx, id, "usage", form)
}

// transition requests PATCH /tasks/:id/<action>. The server decides whether
// the move is allowed.
func (r *RESTTaskRepository) transition(ctx context.Context, id, action string, body any) (*domain.Task, error) {
	resp, err := r.api.Patch(ctx, taskPath(id)+"/"+action, body)
	if err != nil {
		return nil, fmt.Errorf("failed to %s task: %w", action, err)
	}
	return decodeTask(resp, id)
}

func taskPath(id string) string {
	return "/tasks/" + url.PathEscape(id)
}

func decodeTask(resp *apiclient.Response, fallbackID string) (*domain.Task, error) {
	var t domain.Task
	if err := resp.DecodeOne(&t, "task"); err != nil {
		return nil, err
	}
	t.NormalizeID()
	if t.ID == "" {
		t.ID = fallbackID
	}
	return &t, nil
}
