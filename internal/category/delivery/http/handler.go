package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/category/usecase/command"
	"github.com/Nawaf-Almansour/prep-manger/internal/category/usecase/query"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
)

// CategoryHandler serves the category management page
type CategoryHandler struct {
	createHandler *command.CreateCategoryHandler
	updateHandler *command.UpdateCategoryHandler
	deleteHandler *command.DeleteCategoryHandler
	listHandler   *query.ListCategoriesHandler

	validator *validation.Validator
	views     *view.Renderer
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(repo domain.CategoryRepository, v *validation.Validator, effects *mutation.Effects, views *view.Renderer) *CategoryHandler {
	return &CategoryHandler{
		createHandler: command.NewCreateCategoryHandler(repo, v, effects),
		updateHandler: command.NewUpdateCategoryHandler(repo, v, effects),
		deleteHandler: command.NewDeleteCategoryHandler(repo, effects),
		listHandler:   query.NewListCategoriesHandler(repo, effects.Cache()),
		validator:     v,
		views:         views,
	}
}

// ListHandler exposes the category query to the inventory and product forms.
func (h *CategoryHandler) ListHandler() *query.ListCategoriesHandler {
	return h.listHandler
}

// List renders GET /categories. ?edit=<id> opens the form on that category.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	values := fiber.Map{}
	editID := c.Query("edit")
	if editID != "" {
		categories, err := h.listHandler.Handle(c.UserContext(), query.ListCategoriesQuery{})
		if err != nil {
			return err
		}
		for _, cat := range categories {
			if cat.ID == editID {
				values = fiber.Map{"name": cat.Name, "nameAr": cat.NameAr, "description": cat.Description}
				break
			}
		}
	}
	return h.render(c, fiber.StatusOK, editID, values, nil, "")
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	f := view.NewForm(c)
	form := formFrom(f)

	if errs := f.Invalid(h.validator, form); errs != nil {
		return h.render(c, fiber.StatusUnprocessableEntity, "", valuesOf(form), errs, "")
	}
	if _, err := h.createHandler.Handle(c.UserContext(), command.CreateCategoryCommand{Form: form}); err != nil {
		return h.fail(c, "", form, err)
	}
	return view.Redirect(c, "/categories", "common.saved")
}

// Update handles POST /categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	f := view.NewForm(c)
	form := formFrom(f)

	if errs := f.Invalid(h.validator, form); errs != nil {
		return h.render(c, fiber.StatusUnprocessableEntity, id, valuesOf(form), errs, "")
	}
	if _, err := h.updateHandler.Handle(c.UserContext(), command.UpdateCategoryCommand{ID: id, Form: form}); err != nil {
		return h.fail(c, id, form, err)
	}
	return view.Redirect(c, "/categories", "common.saved")
}

// Delete handles POST /categories/:id/delete (soft delete)
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.deleteHandler.Handle(c.UserContext(), command.DeleteCategoryCommand{ID: c.Params("id")}); err != nil {
		return err
	}
	return view.Redirect(c, "/categories", "common.deleted")
}

func formFrom(f *view.Form) domain.CategoryForm {
	return domain.CategoryForm{
		Name:        f.String("name"),
		NameAr:      f.String("nameAr"),
		Description: f.String("description"),
	}
}

func valuesOf(form domain.CategoryForm) fiber.Map {
	return fiber.Map{"name": form.Name, "nameAr": form.NameAr, "description": form.Description}
}

func (h *CategoryHandler) fail(c *fiber.Ctx, id string, form domain.CategoryForm, err error) error {
	msg, fields, fatal := view.Failure(err, h.views.T(c, "errors.unexpected"))
	if fatal != nil {
		return fatal
	}
	return h.render(c, fiber.StatusUnprocessableEntity, id, valuesOf(form), fields, msg)
}

func (h *CategoryHandler) render(c *fiber.Ctx, status int, editID string, values fiber.Map, errs validation.Errors, msg string) error {
	categories, err := h.listHandler.Handle(c.UserContext(), query.ListCategoriesQuery{})
	if err != nil {
		return err
	}
	return h.views.Render(c, status, "categories/index", "categories.title", fiber.Map{
		"Categories": categories,
		"EditID":     editID,
		"Form":       values,
		"Errors":     errs,
		"Error":      msg,
	})
}
