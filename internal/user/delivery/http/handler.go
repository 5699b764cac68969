package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/user/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/user/usecase/command"
	"github.com/Nawaf-Almansour/prep-manger/internal/user/usecase/query"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
)

// UserHandler serves the user management pages
type UserHandler struct {
	// Command handlers
	createHandler *command.CreateUserHandler
	updateHandler *command.UpdateUserHandler

	// Query handlers
	listHandler *query.ListUsersHandler
	getHandler  *query.GetUserHandler

	validator *validation.Validator
	views     *view.Renderer
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo domain.UserRepository, v *validation.Validator, effects *mutation.Effects, views *view.Renderer) *UserHandler {
	return &UserHandler{
		createHandler: command.NewCreateUserHandler(repo, v, effects),
		updateHandler: command.NewUpdateUserHandler(repo, v, effects),
		listHandler:   query.NewListUsersHandler(repo, effects.Cache()),
		getHandler:    query.NewGetUserHandler(repo, effects.Cache()),
		validator:     v,
		views:         views,
	}
}

// ListHandler exposes the user list query to other pages (task assignment).
func (h *UserHandler) ListHandler() *query.ListUsersHandler {
	return h.listHandler
}

// List renders GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	role := c.Query("role")
	users, err := h.listHandler.Handle(c.UserContext(), query.ListUsersQuery{Role: role})
	if err != nil {
		return err
	}
	return h.views.Render(c, fiber.StatusOK, "users/index", "users.title", fiber.Map{
		"Users": users,
		"Role":  role,
		"Roles": domain.AssignableRoles,
	})
}

// New renders GET /users/new
func (h *UserHandler) New(c *fiber.Ctx) error {
	return h.renderForm(c, fiber.StatusOK, "", fiber.Map{"role": "prep", "isActive": true}, nil, "")
}

// Create handles POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	f := view.NewForm(c)
	form := domain.CreateUserForm{
		Name:            f.String("name"),
		Email:           f.String("email"),
		Password:        f.Raw("password"),
		ConfirmPassword: f.Raw("confirmPassword"),
		Role:            f.String("role"),
		Phone:           f.String("phone"),
	}
	values := fiber.Map{"name": form.Name, "email": form.Email, "role": form.Role, "phone": form.Phone}

	if errs := f.Invalid(h.validator, form); errs != nil {
		return h.renderForm(c, fiber.StatusUnprocessableEntity, "", values, errs, "")
	}

	if _, err := h.createHandler.Handle(c.UserContext(), command.CreateUserCommand{Form: form}); err != nil {
		msg, fields, fatal := view.Failure(err, h.views.T(c, "errors.unexpected"))
		if fatal != nil {
			return fatal
		}
		return h.renderForm(c, fiber.StatusUnprocessableEntity, "", values, fields, msg)
	}
	return view.Redirect(c, "/users", "common.saved")
}

// Edit renders GET /users/:id/edit
func (h *UserHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	u, err := h.getHandler.Handle(c.UserContext(), query.GetUserQuery{ID: id})
	if err != nil {
		return err
	}
	values := fiber.Map{
		"name":     u.Name,
		"email":    u.Email,
		"role":     u.Role,
		"phone":    u.Phone,
		"isActive": u.Active(),
	}
	return h.renderForm(c, fiber.StatusOK, id, values, nil, "")
}

// Update handles POST /users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	f := view.NewForm(c)
	form := domain.UpdateUserForm{
		Name:     f.String("name"),
		Email:    f.String("email"),
		Role:     f.String("role"),
		Phone:    f.String("phone"),
		IsActive: f.Bool("isActive"),
	}
	values := fiber.Map{"name": form.Name, "email": form.Email, "role": form.Role, "phone": form.Phone, "isActive": form.IsActive}

	if errs := f.Invalid(h.validator, form); errs != nil {
		return h.renderForm(c, fiber.StatusUnprocessableEntity, id, values, errs, "")
	}

	if _, err := h.updateHandler.Handle(c.UserContext(), command.UpdateUserCommand{ID: id, Form: form}); err != nil {
		msg, fields, fatal := view.Failure(err, h.views.T(c, "errors.unexpected"))
		if fatal != nil {
			return fatal
		}
		return h.renderForm(c, fiber.StatusUnprocessableEntity, id, values, fields, msg)
	}
	return view.Redirect(c, "/users", "common.saved")
}

func (h *UserHandler) renderForm(c *fiber.Ctx, status int, id string, values fiber.Map, errs validation.Errors, msg string) error {
	title := "users.newUser"
	if id != "" {
		title = "users.editUser"
	}
	return h.views.Render(c, status, "users/form", title, fiber.Map{
		"ID":     id,
		"Form":   values,
		"Errors": errs,
		"Error":  msg,
		"Roles":  domain.AssignableRoles,
	})
}
