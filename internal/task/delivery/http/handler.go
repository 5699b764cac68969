package http

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	productdomain "github.com/Nawaf-Almansour/prep-manger/internal/product/domain"
	productquery "github.com/Nawaf-Almansour/prep-manger/internal/product/usecase/query"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/usecase/command"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/usecase/query"
	userdomain "github.com/Nawaf-Almansour/prep-manger/internal/user/domain"
	userquery "github.com/Nawaf-Almansour/prep-manger/internal/user/usecase/query"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

// ProductGetter loads the product a task prepares.
type ProductGetter interface {
	Handle(ctx context.Context, q productquery.GetProductQuery) (*productdomain.Product, error)
}

// UserLister supplies the assignee dropdowns.
type UserLister interface {
	Handle(ctx context.Context, q userquery.ListUsersQuery) ([]userdomain.User, error)
}

// UsageRow is one line of the inventory usage form, prefilled from the
// product's recipe.
type UsageRow struct {
	ItemID       string
	Name         string
	QuantityUsed string
	Unit         string
}

// TaskHandler serves the task pages, the product schedule dialog and comments
type TaskHandler struct {
	// Command handlers
	createHandler        *command.CreateTaskHandler
	startHandler         *command.StartTaskHandler
	completeHandler      *command.CompleteTaskHandler
	assignHandler        *command.AssignTaskHandler
	markLateHandler      *command.MarkTaskLateHandler
	usageHandler         *command.UpdateUsageHandler
	addCommentHandler    *command.AddCommentHandler
	updateCommentHandler *command.UpdateCommentHandler
	deleteCommentHandler *command.DeleteCommentHandler

	// Query handlers
	listHandler     *query.ListTasksHandler
	getHandler      *query.GetTaskHandler
	commentsHandler *query.ListCommentsHandler

	products  ProductGetter
	users     UserLister
	validator *validation.Validator
	views     *view.Renderer
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(
	repo domain.TaskRepository,
	comments domain.CommentRepository,
	v *validation.Validator,
	effects *mutation.Effects,
	views *view.Renderer,
	products ProductGetter,
	users UserLister,
) *TaskHandler {
	return &TaskHandler{
		createHandler:        command.NewCreateTaskHandler(repo, v, effects, views.Location()),
		startHandler:         command.NewStartTaskHandler(repo, effects),
		completeHandler:      command.NewCompleteTaskHandler(repo, effects),
		assignHandler:        command.NewAssignTaskHandler(repo, v, effects),
		markLateHandler:      command.NewMarkTaskLateHandler(repo, effects),
		usageHandler:         command.NewUpdateUsageHandler(repo, v, effects),
		addCommentHandler:    command.NewAddCommentHandler(comments, v, effects),
		updateCommentHandler: command.NewUpdateCommentHandler(comments, v, effects),
		deleteCommentHandler: command.NewDeleteCommentHandler(comments, effects),
		listHandler:          query.NewListTasksHandler(repo, effects.Cache()),
		getHandler:           query.NewGetTaskHandler(repo, effects.Cache()),
		commentsHandler:      query.NewListCommentsHandler(comments, effects.Cache()),
		products:             products,
		users:                users,
		validator:            v,
		views:                views,
	}
}

// ListHandler exposes the task queries to the dashboard.
func (h *TaskHandler) ListHandler() *query.ListTasksHandler {
	return h.listHandler
}

// Index renders GET /tasks, optionally filtered with ?status=
func (h *TaskHandler) Index(c *fiber.Ctx) error {
	status := c.Query("status")
	q := query.ListTasksQuery{Scope: query.ScopeAll}
	if slices.Contains(domain.Statuses, status) {
		q = query.ListTasksQuery{Scope: query.ScopeStatus, Status: status}
	} else {
		status = ""
	}
	return h.renderList(c, q, "tasks.allTasks", status)
}

// Today renders GET /tasks/today
func (h *TaskHandler) Today(c *fiber.Ctx) error {
	return h.renderList(c, query.ListTasksQuery{Scope: query.ScopeToday}, "tasks.today", "")
}

// Mine renders GET /tasks/my-tasks
func (h *TaskHandler) Mine(c *fiber.Ctx) error {
	return h.renderList(c, query.ListTasksQuery{Scope: query.ScopeMine}, "tasks.myTasks", "")
}

func (h *TaskHandler) renderList(c *fiber.Ctx, q query.ListTasksQuery, titleKey, status string) error {
	tasks, err := h.listHandler.Handle(c.UserContext(), q)
	if err != nil {
		return err
	}
	return h.views.Render(c, fiber.StatusOK, "tasks/index", titleKey, fiber.Map{
		"Tasks":      tasks,
		"Status":     status,
		"Statuses":   domain.Statuses,
		"Filterable": q.Scope == query.ScopeAll || q.Scope == query.ScopeStatus,
	})
}

// Show renders GET /tasks/:id with its actions and comments.
func (h *TaskHandler) Show(c *fiber.Ctx) error {
	return h.renderShow(c, fiber.StatusOK, c.Params("id"), nil, "")
}

func (h *TaskHandler) renderShow(c *fiber.Ctx, status int, id string, errs validation.Errors, msg string) error {
	ctx := c.UserContext()
	t, err := h.getHandler.Handle(ctx, query.GetTaskQuery{ID: id})
	if err != nil {
		return err
	}
	comments, err := h.commentsHandler.Handle(ctx, query.ListCommentsQuery{TaskID: id})
	if err != nil {
		if _, _, fatal := view.Failure(err, ""); fatal != nil {
			return fatal
		}
		logger.Warn(ctx).Err(err).Str("task_id", id).Msg("Failed to load task comments")
	}

	return h.views.Render(c, status, "tasks/show", "tasks.details", fiber.Map{
		"Task":          t,
		"Comments":      comments,
		"EditCommentID": c.Query("editComment"),
		"Assignees":     h.assignees(c),
		"Usage":         h.usageRows(c, t),
		"Errors":        errs,
		"Error":         msg,
	})
}

// Start handles POST /tasks/:id/start
func (h *TaskHandler) Start(c *fiber.Ctx) error {
	id := c.Params("id")
	_, err := h.startHandler.Handle(c.UserContext(), command.StartTaskCommand{ID: id})
	return h.afterAction(c, id, err)
}

// Complete handles POST /tasks/:id/complete
func (h *TaskHandler) Complete(c *fiber.Ctx) error {
	id := c.Params("id")
	f := view.NewForm(c)
	_, err := h.completeHandler.Handle(c.UserContext(), command.CompleteTaskCommand{ID: id, Notes: f.String("notes")})
	return h.afterAction(c, id, err)
}

// Assign handles POST /tasks/:id/assign
func (h *TaskHandler) Assign(c *fiber.Ctx) error {
	id := c.Params("id")
	f := view.NewForm(c)
	form := domain.AssignForm{UserID: f.String("userId")}
	for _, a := range h.assignees(c) {
		if a.ID == form.UserID {
			form.UserName = a.Name
			break
		}
	}
	_, err := h.assignHandler.Handle(c.UserContext(), command.AssignTaskCommand{ID: id, Form: form})
	return h.afterAction(c, id, err)
}

// MarkLate handles POST /tasks/:id/late
func (h *TaskHandler) MarkLate(c *fiber.Ctx) error {
	id := c.Params("id")
	_, err := h.markLateHandler.Handle(c.UserContext(), command.MarkTaskLateCommand{ID: id})
	return h.afterAction(c, id, err)
}

// UpdateUsage handles POST /tasks/:id/usage. Rows left blank are skipped.
func (h *TaskHandler) UpdateUsage(c *fiber.Ctx) error {
	id := c.Params("id")
	f := view.NewForm(c)
	form := domain.UsageForm{InventoryUsage: []domain.UsageLine{}}
	for i, row := range f.Rows("usage") {
		if row["quantityUsed"] == "" {
			continue
		}
		form.InventoryUsage = append(form.InventoryUsage, domain.UsageLine{
			ItemID:       row["itemId"],
			QuantityUsed: f.ParseFloat(fmt.Sprintf("usage[%d].quantityUsed", i), row["quantityUsed"]),
			Unit:         row["unit"],
		})
	}
	if len(f.Errors) > 0 {
		return h.renderShow(c, fiber.StatusUnprocessableEntity, id, f.Errors, "")
	}

	_, err := h.usageHandler.Handle(c.UserContext(), command.UpdateUsageCommand{ID: id, Form: form})
	return h.afterAction(c, id, err)
}

// AddComment handles POST /tasks/:id/comments
func (h *TaskHandler) AddComment(c *fiber.Ctx) error {
	id := c.Params("id")
	f := view.NewForm(c)
	form := domain.CommentForm{Comment: f.String("comment")}
	if link := f.String("attachment"); link != "" {
		form.Attachments = []string{link}
	}
	_, err := h.addCommentHandler.Handle(c.UserContext(), command.AddCommentCommand{TaskID: id, Form: form})
	return h.afterAction(c, id, err)
}

// UpdateComment handles POST /tasks/:id/comments/:commentId
func (h *TaskHandler) UpdateComment(c *fiber.Ctx) error {
	id := c.Params("id")
	f := view.NewForm(c)
	cmd := command.UpdateCommentCommand{ID: c.Params("commentId"), Form: domain.CommentForm{Comment: f.String("comment")}}
	_, err := h.updateCommentHandler.Handle(c.UserContext(), cmd)
	return h.afterAction(c, id, err)
}

// DeleteComment handles POST /tasks/:id/comments/:commentId/delete
func (h *TaskHandler) DeleteComment(c *fiber.Ctx) error {
	id := c.Params("id")
	err := h.deleteCommentHandler.Handle(c.UserContext(), command.DeleteCommentCommand{ID: c.Params("commentId")})
	return h.afterAction(c, id, err)
}

// afterAction redirects back to the task, or shows the failure on it.
func (h *TaskHandler) afterAction(c *fiber.Ctx, id string, err error) error {
	if err == nil {
		return view.Redirect(c, "/tasks/"+id, "tasks.updated")
	}
	msg, fields, fatal := view.Failure(err, h.views.T(c, "errors.unexpected"))
	if fatal != nil {
		return fatal
	}
	return h.renderShow(c, fiber.StatusUnprocessableEntity, id, fields, msg)
}

// SchedulePage renders GET /products/:id/schedule
func (h *TaskHandler) SchedulePage(c *fiber.Ctx) error {
	values := fiber.Map{
		"scheduledDate":  time.Now().In(h.views.Location()).Format("2006-01-02"),
		"taskType":       "daily_recurring",
		"priority":       "medium",
		"assignmentType": "any_team_member",
	}
	return h.renderSchedule(c, fiber.StatusOK, values, nil, "")
}

// Schedule handles POST /products/:id/schedule
func (h *TaskHandler) Schedule(c *fiber.Ctx) error {
	productID := c.Params("id")
	f := view.NewForm(c)
	form := domain.ScheduleForm{
		ProductID:      productID,
		ScheduledDate:  f.String("scheduledDate"),
		ScheduledTime:  f.String("scheduledTime"),
		TaskType:       f.String("taskType"),
		Priority:       f.String("priority"),
		AssignmentType: f.String("assignmentType"),
		AssignedUserID: f.String("assignedUserId"),
		Notes:          f.String("notes"),
	}
	values := fiber.Map{
		"scheduledDate":  form.ScheduledDate,
		"scheduledTime":  form.ScheduledTime,
		"taskType":       form.TaskType,
		"priority":       form.Priority,
		"assignmentType": form.AssignmentType,
		"assignedUserId": form.AssignedUserID,
		"notes":          form.Notes,
	}

	if errs := f.Invalid(h.validator, form); errs != nil {
		return h.renderSchedule(c, fiber.StatusUnprocessableEntity, values, errs, "")
	}

	cmd := command.CreateTaskCommand{Form: form, Assignees: h.assignees(c)}
	if _, err := h.createHandler.Handle(c.UserContext(), cmd); err != nil {
		msg, fields, fatal := view.Failure(err, h.views.T(c, "tasks.scheduleFailed"))
		if fatal != nil {
			return fatal
		}
		return h.renderSchedule(c, fiber.StatusUnprocessableEntity, values, fields, msg)
	}
	return view.Redirect(c, "/products/"+productID+"/tasks", "tasks.scheduled")
}

func (h *TaskHandler) renderSchedule(c *fiber.Ctx, status int, values fiber.Map, errs validation.Errors, msg string) error {
	p, err := h.products.Handle(c.UserContext(), productquery.GetProductQuery{ID: c.Params("id")})
	if err != nil {
		return err
	}
	return h.views.Render(c, status, "tasks/schedule", "products.schedulePreparation", fiber.Map{
		"Product":         p,
		"Form":            values,
		"Errors":          errs,
		"Error":           msg,
		"Assignees":       h.assignees(c),
		"TaskTypes":       domain.TaskTypes,
		"Priorities":      domain.Priorities,
		"AssignmentTypes": domain.AssignmentTypes,
	})
}

// ProductTasks renders GET /products/:id/tasks grouped by status.
func (h *TaskHandler) ProductTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")
	p, err := h.products.Handle(ctx, productquery.GetProductQuery{ID: id})
	if err != nil {
		return err
	}
	tasks, err := h.listHandler.Handle(ctx, query.ListTasksQuery{Scope: query.ScopeProduct, ProductID: id})
	if err != nil {
		return err
	}
	return h.views.Render(c, fiber.StatusOK, "tasks/product", "products.tasks", fiber.Map{
		"Product": p,
		"Groups":  domain.GroupByStatus(tasks),
	})
}

// assignees lists active users for supervisors and managers. Prep staff get
// none, and a failed lookup leaves the dropdown empty.
func (h *TaskHandler) assignees(c *fiber.Ctx) []domain.Assignee {
	s := session.FromCtx(c)
	if s == nil || s.User == nil || !s.User.HasRole(session.RoleSupervisor, session.RoleManager) {
		return nil
	}
	users, err := h.users.Handle(c.UserContext(), userquery.ListUsersQuery{})
	if err != nil {
		logger.Warn(c.UserContext()).Err(err).Msg("Failed to load assignable users")
		return nil
	}
	out := make([]domain.Assignee, 0, len(users))
	for _, u := range users {
		if u.Active() {
			out = append(out, domain.Assignee{ID: u.ID, Name: u.Name})
		}
	}
	return out
}

func (h *TaskHandler) usageRows(c *fiber.Ctx, t *domain.Task) []UsageRow {
	if t.ProductID.ID == "" {
		return nil
	}
	p, err := h.products.Handle(c.UserContext(), productquery.GetProductQuery{ID: t.ProductID.ID})
	if err != nil {
		logger.Warn(c.UserContext()).Err(err).Str("product_id", t.ProductID.ID).Msg("Failed to load recipe for usage form")
		return nil
	}
	return UsageRowsFor(p.Ingredients, t.InventoryUsage)
}

// UsageRowsFor builds one row per ingredient, filled with any usage already
// recorded for that item.
func UsageRowsFor(ingredients []productdomain.RequiredIngredient, recorded []domain.InventoryUsage) []UsageRow {
	rows := make([]UsageRow, 0, len(ingredients))
	for _, ing := range ingredients {
		row := UsageRow{ItemID: ing.IngredientID, Name: ing.Name, Unit: ing.Unit}
		for _, u := range recorded {
			if u.ItemID == ing.IngredientID {
				row.QuantityUsed = view.FormatNumber(u.QuantityUsed)
				if u.Unit != "" {
					row.Unit = u.Unit
				}
				break
			}
		}
		rows = append(rows, row)
	}
	return rows
}
