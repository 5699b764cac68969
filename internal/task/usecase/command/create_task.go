package command

import (
	"context"
	"strings"
	"time"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

// CreateTaskCommand schedules a preparation. Assignees resolves the name sent
// with assignedTo.
type CreateTaskCommand struct {
	Form      domain.ScheduleForm
	Assignees []domain.Assignee
}

// CreateTaskHandler handles task scheduling command
type CreateTaskHandler struct {
	repo      domain.TaskRepository
	validator *validation.Validator
	effects   *mutation.Effects
	loc       *time.Location
}

// NewCreateTaskHandler creates a new create task handler. Submitted dates and
// times are read in loc.
func NewCreateTaskHandler(repo domain.TaskRepository, v *validation.Validator, effects *mutation.Effects, loc *time.Location) *CreateTaskHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &CreateTaskHandler{repo: repo, validator: v, effects: effects, loc: loc}
}

// Handle validates the schedule before any call and creates the task
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*domain.Task, error) {
	form := cmd.Form
	form.ScheduledDate = strings.TrimSpace(form.ScheduledDate)
	form.ScheduledTime = strings.TrimSpace(form.ScheduledTime)
	form.Notes = strings.TrimSpace(form.Notes)
	if err := h.validator.Struct(form); err != nil {
		return nil, err
	}

	req, err := BuildCreateRequest(form, h.loc, cmd.Assignees)
	if err != nil {
		return nil, err
	}

	t, err := h.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	h.effects.Committed(ctx, domain.EventTaskCreated, "task", t.ID, domain.CachePrefix)
	return t, nil
}

// BuildCreateRequest turns a valid schedule form into the POST /tasks body.
// assignedTo is only sent for a well-formed user id.
func BuildCreateRequest(form domain.ScheduleForm, loc *time.Location, assignees []domain.Assignee) (domain.CreateTaskRequest, error) {
	at, err := time.ParseInLocation("2006-01-02 15:04", form.ScheduledDate+" "+form.ScheduledTime, loc)
	if err != nil {
		return domain.CreateTaskRequest{}, validation.Errors{"scheduledDate": "Invalid date"}
	}

	req := domain.CreateTaskRequest{
		ProductID:      form.ProductID,
		ScheduledAt:    at.UTC().Format(time.RFC3339),
		TaskType:       form.TaskType,
		Priority:       form.Priority,
		AssignmentType: form.AssignmentType,
		Notes:          strings.TrimSpace(form.Notes),
	}
	if apiclient.IsObjectID(form.AssignedUserID) {
		req.AssignedTo = form.AssignedUserID
		for _, a := range assignees {
			if a.ID == form.AssignedUserID {
				req.AssignedToName = a.Name
				break
			}
		}
	}
	return req, nil
}
