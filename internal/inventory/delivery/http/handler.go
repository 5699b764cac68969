package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	categorydomain "github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
	categoryquery "github.com/Nawaf-Almansour/prep-manger/internal/category/usecase/query"
	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/usecase/command"
	"github.com/Nawaf-Almansour/prep-manger/internal/inventory/usecase/query"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

// CategoryLister supplies the category dropdown of the item form.
type CategoryLister interface {
	Handle(ctx context.Context, q categoryquery.ListCategoriesQuery) ([]categorydomain.Category, error)
}

// InventoryHandler serves the inventory pages
type InventoryHandler struct {
	// Command handlers
	createHandler  *command.CreateItemHandler
	updateHandler  *command.UpdateItemHandler
	restockHandler *command.RestockItemHandler

	// Query handlers
	listHandler *query.ListItemsHandler
	getHandler  *query.GetItemHandler

	categories CategoryLister
	validator  *validation.Validator
	views      *view.Renderer
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	repo domain.InventoryRepository,
	v *validation.Validator,
	effects *mutation.Effects,
	views *view.Renderer,
	categories CategoryLister,
) *InventoryHandler {
	return &InventoryHandler{
		createHandler:  command.NewCreateItemHandler(repo, v, effects),
		updateHandler:  command.NewUpdateItemHandler(repo, v, effects),
		restockHandler: command.NewRestockItemHandler(repo, v, effects),
		listHandler:    query.NewListItemsHandler(repo, effects.Cache()),
		getHandler:     query.NewGetItemHandler(repo, effects.Cache()),
		categories:     categories,
		validator:      v,
		views:          views,
	}
}

// ListHandler exposes the inventory query to the product form and dashboard.
func (h *InventoryHandler) ListHandler() *query.ListItemsHandler {
	return h.listHandler
}

// List renders GET /inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	q := query.ListItemsQuery{
		LowStockOnly: c.QueryBool("lowStock"),
		Search:       c.Query("search"),
	}
	items, err := h.listHandler.Handle(c.UserContext(), q)
	if err != nil {
		return err
	}
	return h.views.Render(c, fiber.StatusOK, "inventory/index", "inventory.title", fiber.Map{
		"Items":    items,
		"Search":   q.Search,
		"LowStock": q.LowStockOnly,
	})
}

// Show renders GET /inventory/:id with the restock form.
func (h *InventoryHandler) Show(c *fiber.Ctx) error {
	return h.renderShow(c, fiber.StatusOK, c.Params("id"), nil, "")
}

func (h *InventoryHandler) renderShow(c *fiber.Ctx, status int, id string, errs validation.Errors, msg string) error {
	item, err := h.getHandler.Handle(c.UserContext(), query.GetItemQuery{ID: id})
	if err != nil {
		return err
	}
	return h.views.Render(c, status, "inventory/show", "inventory.title", fiber.Map{
		"Item":   item,
		"Errors": errs,
		"Error":  msg,
	})
}

// Restock handles POST /inventory/:id/restock
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	id := c.Params("id")
	f := view.NewForm(c)
	qty := f.Float("quantity")
	if len(f.Errors) > 0 {
		return h.renderShow(c, fiber.StatusUnprocessableEntity, id, f.Errors, "")
	}

	if _, err := h.restockHandler.Handle(c.UserContext(), command.RestockItemCommand{ID: id, Quantity: qty}); err != nil {
		msg, fields, fatal := view.Failure(err, h.views.T(c, "errors.unexpected"))
		if fatal != nil {
			return fatal
		}
		return h.renderShow(c, fiber.StatusUnprocessableEntity, id, fields, msg)
	}
	return view.Redirect(c, "/inventory/"+id, "inventory.restocked")
}

// New renders GET /inventory/new
func (h *InventoryHandler) New(c *fiber.Ctx) error {
	return h.renderForm(c, fiber.StatusOK, "", fiber.Map{"currentQuantity": "0", "minThreshold": "0"}, nil, "")
}

// Create handles POST /inventory
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	f, form, values, err := h.parseForm(c)
	if err != nil {
		return err
	}
	if errs := f.Invalid(h.validator, form); errs != nil {
		return h.renderForm(c, fiber.StatusUnprocessableEntity, "", values, errs, "")
	}

	it, err := h.createHandler.Handle(c.UserContext(), command.CreateItemCommand{Form: form})
	if err != nil {
		return h.fail(c, "", values, err)
	}
	if it.ID == "" {
		return view.Redirect(c, "/inventory", "common.saved")
	}
	return view.Redirect(c, "/inventory/"+it.ID, "common.saved")
}

// Edit renders GET /inventory/:id/edit
func (h *InventoryHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	it, err := h.getHandler.Handle(c.UserContext(), query.GetItemQuery{ID: id})
	if err != nil {
		return err
	}
	values := fiber.Map{
		"name":            it.Name,
		"nameAr":          it.NameAr,
		"category":        it.Category,
		"unit":            it.Unit,
		"currentQuantity": view.FormatNumber(it.CurrentQuantity),
		"minThreshold":    view.FormatNumber(it.MinThreshold),
		"maxThreshold":    view.FormatNumber(it.MaxThreshold),
		"supplier":        it.Supplier,
		"image":           it.Image,
	}
	if it.Cost != nil {
		values["cost"] = view.FormatNumber(*it.Cost)
	}
	return h.renderForm(c, fiber.StatusOK, id, values, nil, "")
}

// Update handles POST /inventory/:id
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	f, form, values, err := h.parseForm(c)
	if err != nil {
		return err
	}
	if errs := f.Invalid(h.validator, form); errs != nil {
		return h.renderForm(c, fiber.StatusUnprocessableEntity, id, values, errs, "")
	}

	if _, err := h.updateHandler.Handle(c.UserContext(), command.UpdateItemCommand{ID: id, Form: form}); err != nil {
		return h.fail(c, id, values, err)
	}
	return view.Redirect(c, "/inventory/"+id, "common.saved")
}

func (h *InventoryHandler) parseForm(c *fiber.Ctx) (*view.Form, domain.ItemForm, fiber.Map, error) {
	f := view.NewForm(c)
	form := domain.ItemForm{
		Name:            f.String("name"),
		NameAr:          f.String("nameAr"),
		Category:        f.String("category"),
		Unit:            f.String("unit"),
		CurrentQuantity: f.Float("currentQuantity"),
		MinThreshold:    f.Float("minThreshold"),
		MaxThreshold:    f.Float("maxThreshold"),
		Supplier:        f.String("supplier"),
		Cost:            f.OptionalFloat("cost"),
	}

	img, err := f.File("image")
	if err != nil {
		return nil, form, nil, err
	}
	form.Image = img

	values := fiber.Map{}
	for _, key := range []string{"name", "nameAr", "category", "unit", "currentQuantity", "minThreshold", "maxThreshold", "supplier", "cost"} {
		values[key] = f.String(key)
	}
	return f, form, values, nil
}

func (h *InventoryHandler) fail(c *fiber.Ctx, id string, values fiber.Map, err error) error {
	msg, fields, fatal := view.Failure(err, h.views.T(c, "errors.unexpected"))
	if fatal != nil {
		return fatal
	}
	return h.renderForm(c, fiber.StatusUnprocessableEntity, id, values, fields, msg)
}

func (h *InventoryHandler) renderForm(c *fiber.Ctx, status int, id string, values fiber.Map, errs validation.Errors, msg string) error {
	categories, err := h.categories.Handle(c.UserContext(), categoryquery.ListCategoriesQuery{ActiveOnly: true})
	if err != nil {
		_, _, fatal := view.Failure(err, "")
		if fatal != nil {
			return fatal
		}
		// the category input falls back to free text
		logger.Warn(c.UserContext()).Err(err).Msg("Failed to load categories for the item form")
	}

	title := "inventory.newItem"
	if id != "" {
		title = "inventory.editItem"
	}
	return h.views.Render(c, status, "inventory/form", title, fiber.Map{
		"ID":         id,
		"Form":       values,
		"Errors":     errs,
		"Error":      msg,
		"Categories": categories,
	})
}
