package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
	"github.com/Nawaf-Almansour/prep-manger/pkg/tracing"
)

const tracerName = "task-repository"

// RESTTaskRepositoryWithTracing wraps RESTTaskRepository with spans.
type RESTTaskRepositoryWithTracing struct {
	*RESTTaskRepository
}

func NewRESTTaskRepositoryWithTracing(api *apiclient.Client) *RESTTaskRepositoryWithTracing {
	return &RESTTaskRepositoryWithTracing{RESTTaskRepository: NewRESTTaskRepository(api)}
}

func (r *RESTTaskRepositoryWithTracing) traceList(ctx context.Context, span string, load func(context.Context) ([]domain.Task, error), attrs ...attribute.KeyValue) ([]domain.Task, error) {
	ctx, s := tracing.Start(ctx, tracerName, span, attrs...)
	tasks, err := load(ctx)
	s.SetAttributes(attribute.Int("task.count", len(tasks)))
	tracing.End(s, err)
	return tasks, err
}

func (r *RESTTaskRepositoryWithTracing) traceOne(ctx context.Context, span, id string, call func(context.Context) (*domain.Task, error)) (*domain.Task, error) {
	ctx, s := tracing.Start(ctx, tracerName, span, attribute.String("task.id", id))
	t, err := call(ctx)
	if t != nil {
		s.SetAttributes(attribute.String("task.status", t.Status))
	}
	tracing.End(s, err)
	return t, err
}

func (r *RESTTaskRepositoryWithTracing) All(ctx context.Context) ([]domain.Task, error) {
	return r.traceList(ctx, "repository.All", r.RESTTaskRepository.All)
}

func (r *RESTTaskRepositoryWithTracing) Today(ctx context.Context) ([]domain.Task, error) {
	return r.traceList(ctx, "repository.Today", r.RESTTaskRepository.Today)
}

func (r *RESTTaskRepositoryWithTracing) Mine(ctx context.Context) ([]domain.Task, error) {
	return r.traceList(ctx, "repository.Mine", r.RESTTaskRepository.Mine)
}

func (r *RESTTaskRepositoryWithTracing) ByStatus(ctx context.Context, status string) ([]domain.Task, error) {
	return r.traceList(ctx, "repository.ByStatus", func(ctx context.Context) ([]domain.Task, error) {
		return r.RESTTaskRepository.ByStatus(ctx, status)
	}, attribute.String("task.status", status))
}

func (r *RESTTaskRepositoryWithTracing) ByProduct(ctx context.Context, productID string) ([]domain.Task, error) {
	return r.traceList(ctx, "repository.ByProduct", func(ctx context.Context) ([]domain.Task, error) {
		return r.RESTTaskRepository.ByProduct(ctx, productID)
	}, attribute.String("product.id", productID))
}

func (r *RESTTaskRepositoryWithTracing) Get(ctx context.Context, id string) (*domain.Task, error) {
	return r.traceOne(ctx, "repository.Get", id, func(ctx context.Context) (*domain.Task, error) {
		return r.RESTTaskRepository.Get(ctx, id)
	})
}

func (r *RESTTaskRepositoryWithTracing) Create(ctx context.Context, req domain.CreateTaskRequest) (*domain.Task, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.Create",
		attribute.String("product.id", req.ProductID),
		attribute.String("task.type", req.TaskType),
		attribute.String("task.priority", req.Priority),
		attribute.Bool("task.assigned", req.AssignedTo != ""),
	)
	t, err := r.RESTTaskRepository.Create(ctx, req)
	if t != nil {
		span.SetAttributes(attribute.String("task.id", t.ID))
	}
	tracing.End(span, err)
	return t, err
}

func (r *RESTTaskRepositoryWithTracing) Start(ctx context.Context, id string) (*domain.Task, error) {
	return r.traceOne(ctx, "repository.Start", id, func(ctx context.Context) (*domain.Task, error) {
		return r.RESTTaskRepository.Start(ctx, id)
	})
}

func (r *RESTTaskRepositoryWithTracing) Complete(ctx context.Context, id string, form domain.CompleteForm) (*domain.Task, error) {
	return r.traceOne(ctx, "repository.Complete", id, func(ctx context.Context) (*domain.Task, error) {
		return r.RESTTaskRepository.Complete(ctx, id, form)
	})
}

func (r *RESTTaskRepositoryWithTracing) Assign(ctx context.Context, id string, form domain.AssignForm) (*domain.Task, error) {
	return r.traceOne(ctx, "repository.Assign", id, func(ctx context.Context) (*domain.Task, error) {
		return r.RESTTaskRepository.Assign(ctx, id, form)
	})
}

func (r *RESTTaskRepositoryWithTracing) MarkLate(ctx context.Context, id string) (*domain.Task, error) {
	return r.traceOne(ctx, "repository.MarkLate", id, func(ctx context.Context) (*domain.Task, error) {
		return r.RESTTaskRepository.MarkLate(ctx, id)
	})
}

func (r *RESTTaskRepositoryWithTracing) UpdateUsage(ctx context.Context, id string, form domain.UsageForm) (*domain.Task, error) {
	return r.traceOne(ctx, "repository.UpdateUsage", id, func(ctx context.Context) (*domain.Task, error) {
		return r.RESTTaskRepository.UpdateUsage(ctx, id, form)
	})
}

// RESTCommentRepositoryWithTracing wraps RESTCommentRepository with spans.
type RESTCommentRepositoryWithTracing struct {
	*RESTCommentRepository
}

func NewRESTCommentRepositoryWithTracing(api *apiclient.Client) *RESTCommentRepositoryWithTracing {
	return &RESTCommentRepositoryWithTracing{RESTCommentRepository: NewRESTCommentRepository(api)}
}

func (r *RESTCommentRepositoryWithTracing) List(ctx context.Context, taskID string) ([]domain.Comment, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.ListComments", attribute.String("task.id", taskID))
	comments, err := r.RESTCommentRepository.List(ctx, taskID)
	span.SetAttributes(attribute.Int("comment.count", len(comments)))
	tracing.End(span, err)
	return comments, err
}

func (r *RESTCommentRepositoryWithTracing) Add(ctx context.Context, taskID string, form domain.CommentForm) (*domain.Comment, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.AddComment",
		attribute.String("task.id", taskID),
		attribute.Int("comment.attachments", len(form.Attachments)),
	)
	c, err := r.RESTCommentRepository.Add(ctx, taskID, form)
	tracing.End(span, err)
	return c, err
}

func (r *RESTCommentRepositoryWithTracing) Update(ctx context.Context, id string, form domain.CommentForm) (*domain.Comment, error) {
	ctx, span := tracing.Start(ctx, tracerName, "repository.UpdateComment", attribute.String("comment.id", id))
	c, err := r.RESTCommentRepository.Update(ctx, id, form)
	tracing.End(span, err)
	return c, err
}

func (r *RESTCommentRepositoryWithTracing) Delete(ctx context.Context, id string) error {
	ctx, span := tracing.Start(ctx, tracerName, "repository.DeleteComment", attribute.String("comment.id", id))
	err := r.RESTCommentRepository.Delete(ctx, id)
	tracing.End(span, err)
	return err
}
