package domain

import (
	"context"
	"time"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
)

// Activity event types
const (
	EventTaskCreated      = "task.created"
	EventTaskStarted      = "task.started"
	EventTaskCompleted    = "task.completed"
	EventTaskAssigned     = "task.assigned"
	EventTaskMarkedLate   = "task.marked_late"
	EventTaskUsageUpdated = "task.usage_updated"
	EventCommentAdded     = "comment.created"
	EventCommentUpdated   = "comment.updated"
	EventCommentDeleted   = "comment.deleted"
)

const (
	CachePrefix        = "tasks"
	CommentCachePrefix = "comments"
)

// Task statuses
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusLate       = "late"
	StatusOverdue    = "overdue"
)

var Statuses = []string{StatusScheduled, StatusInProgress, StatusCompleted, StatusLate, StatusOverdue}

var (
	TaskTypes       = []string{"daily_recurring", "weekly_recurring", "on_demand", "red_alert", "medium"}
	Priorities      = []string{"critical", "high", "medium", "low"}
	AssignmentTypes = []string{"any_team_member", "specific_user"}
)

// InventoryUsage is stock consumed by a task.
type InventoryUsage struct {
	ItemID       string  `json:"itemId"`
	QuantityUsed float64 `json:"quantityUsed"`
	Unit         string  `json:"unit,omitempty"`
}

// Task is one scheduled preparation of a product.
type Task struct {
	apiclient.Identity
	ProductID      apiclient.Ref    `json:"productId"`
	ProductName    string           `json:"productName,omitempty"`
	Status         string           `json:"status"`
	ScheduledAt    time.Time        `json:"scheduledAt"`
	TaskType       string           `json:"taskType,omitempty"`
	Priority       string           `json:"priority,omitempty"`
	AssignmentType string           `json:"assignmentType,omitempty"`
	AssignedTo     apiclient.Ref    `json:"assignedTo"`
	AssignedToName string           `json:"assignedToName,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	InventoryUsage []InventoryUsage `json:"inventoryUsage,omitempty"`
	StartedAt      *time.Time       `json:"startedAt,omitempty"`
	CompletedAt    *time.Time       `json:"completedAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// Product returns the product name, from the task or the populated reference.
func (t Task) Product() string {
	if t.ProductName != "" {
		return t.ProductName
	}
	return t.ProductID.Name
}

func (t Task) Assignee() string {
	if t.AssignedToName != "" {
		return t.AssignedToName
	}
	return t.AssignedTo.Name
}

// StatusGroups splits tasks by status for the product tasks page. Overdue
// tasks are shown with late ones.
type StatusGroups struct {
	Late       []Task
	Scheduled  []Task
	InProgress []Task
	Completed  []Task
}

func (g StatusGroups) Total() int {
	return len(g.Late) + len(g.Scheduled) + len(g.InProgress) + len(g.Completed)
}

func GroupByStatus(tasks []Task) StatusGroups {
	var g StatusGroups
	for _, t := range tasks {
		switch t.Status {
		case StatusLate, StatusOverdue:
			g.Late = append(g.Late, t)
		case StatusScheduled:
			g.Scheduled = append(g.Scheduled, t)
		case StatusInProgress:
			g.InProgress = append(g.InProgress, t)
		case StatusCompleted:
			g.Completed = append(g.Completed, t)
		}
	}
	return g
}

// Comment is a note left on a task.
type Comment struct {
	apiclient.Identity
	TaskID      apiclient.Ref `json:"taskId"`
	UserID      apiclient.Ref `json:"userId"`
	UserName    string        `json:"userName,omitempty"`
	Comment     string        `json:"comment"`
	Attachments []string      `json:"attachments,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (c Comment) Author() string {
	if c.UserName != "" {
		return c.UserName
	}
	return c.UserID.Name
}

// Assignee is a user who can be picked for a task.
type Assignee struct {
	ID   string
	Name string
}

// ScheduleForm is the schedule-preparation dialog.
type ScheduleForm struct {
	ProductID      string `json:"productId" validate:"required" message:"Product is required"`
	ScheduledDate  string `json:"scheduledDate" validate:"required,datetime=2006-01-02" message:"required=Date is required;Invalid date"`
	ScheduledTime  string `json:"scheduledTime" validate:"required,datetime=15:04" message:"required=Time is required;Invalid time"`
	TaskType       string `json:"taskType" validate:"oneof=red_alert medium daily_recurring weekly_recurring on_demand" message:"Select a task type"`
	Priority       string `json:"priority" validate:"oneof=critical high medium low" message:"Select a priority"`
	AssignmentType string `json:"assignmentType" validate:"oneof=specific_user any_team_member" message:"Select an assignment type"`
	AssignedUserID string `json:"assignedUserId,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	ProductID      string `json:"productId"`
	ScheduledAt    string `json:"scheduledAt"`
	TaskType       string `json:"taskType"`
	Priority       string `json:"priority"`
	AssignmentType string `json:"assignmentType"`
	AssignedTo     string `json:"assignedTo,omitempty"`
	AssignedToName string `json:"assignedToName,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type CompleteForm struct {
	Notes string `json:"notes,omitempty"`
}

type AssignForm struct {
	UserID   string `json:"userId" validate:"required" message:"Select a user"`
	UserName string `json:"userName,omitempty"`
}

type UsageLine struct {
	ItemID       string  `json:"itemId" validate:"required" message:"Item is required"`
	QuantityUsed float64 `json:"quantityUsed" validate:"gt=0" message:"Quantity must be greater than 0"`
	Unit         string  `json:"unit,omitempty"`
}

type UsageForm struct {
	InventoryUsage []UsageLine `json:"inventoryUsage" validate:"min=1,dive" message:"Record at least one item"`
}

type CommentForm struct {
	Comment     string   `json:"comment" validate:"notblank" message:"Comment is required"`
	Attachments []string `json:"attachments,omitempty"`
}

// TaskRepository reads tasks and requests their transitions through the API.
type TaskRepository interface {
	All(ctx context.Context) ([]Task, error)
	Today(ctx context.Context) ([]Task, error)
	Mine(ctx context.Context) ([]Task, error)
	ByStatus(ctx context.Context, status string) ([]Task, error)
	ByProduct(ctx context.Context, productID string) ([]Task, error)
	Get(ctx context.Context, id string) (*Task, error)
	Create(ctx context.Context, req CreateTaskRequest) (*Task, error)
	Start(ctx context.Context, id string) (*Task, error)
	Complete(ctx context.Context, id string, form CompleteForm) (*Task, error)
	Assign(ctx context.Context, id string, form AssignForm) (*Task, error)
	MarkLate(ctx context.Context, id string) (*Task, error)
	UpdateUsage(ctx context.Context, id string, form UsageForm) (*Task, error)
}

// CommentRepository manages task comments.
type CommentRepository interface {
	List(ctx context.Context, taskID string) ([]Comment, error)
	Add(ctx context.Context, taskID string, form CommentForm) (*Comment, error)
	Update(ctx context.Context, id string, form CommentForm) (*Comment, error)
	Delete(ctx context.Context, id string) error
}
