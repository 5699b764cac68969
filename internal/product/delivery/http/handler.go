package http

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	categorydomain "github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
	categoryquery "github.com/Nawaf-Almansour/prep-manger/internal/category/usecase/query"
	inventorydomain "github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	inventoryquery "github.com/Nawaf-Almansour/prep-manger/internal/inventory/usecase/query"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/product/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/product/usecase/command"
	"github.com/Nawaf-Almansour/prep-manger/internal/product/usecase/query"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

const (
	actionAddIngredient    = "add-ingredient"
	actionRemoveIngredient = "remove-ingredient:"
)

// CategoryLister supplies the category dropdown of the product form.
type CategoryLister interface {
	Handle(ctx context.Context, q categoryquery.ListCategoriesQuery) ([]categorydomain.Category, error)
}

// InventoryLister supplies the ingredient dropdown of the product form.
type InventoryLister interface {
	Handle(ctx context.Context, q inventoryquery.ListItemsQuery) ([]inventorydomain.Item, error)
}

// IngredientRow is one ingredient line as shown in the form. Quantity keeps
// the submitted text so a bad number is redisplayed as typed.
type IngredientRow struct {
	IngredientID string
	Name         string
	Quantity     string
	Unit         string
}

// ProductHandler serves the product pages
type ProductHandler struct {
	// Command handlers
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	// Query handlers
	listHandler *query.ListProductsHandler
	getHandler  *query.GetProductHandler

	categories CategoryLister
	inventory  InventoryLister
	validator  *validation.Validator
	views      *view.Renderer
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	repo domain.ProductRepository,
	v *validation.Validator,
	effects *mutation.Effects,
	views *view.Renderer,
	categories CategoryLister,
	inventory InventoryLister,
) *ProductHandler {
	return &ProductHandler{
		createHandler: command.NewCreateProductHandler(repo, v, effects),
		updateHandler: command.NewUpdateProductHandler(repo, v, effects),
		deleteHandler: command.NewDeleteProductHandler(repo, effects),
		listHandler:   query.NewListProductsHandler(repo, effects.Cache()),
		getHandler:    query.NewGetProductHandler(repo, effects.Cache()),
		categories:    categories,
		inventory:     inventory,
		validator:     v,
		views:         views,
	}
}

// ListHandler exposes the product query to the task pages.
func (h *ProductHandler) ListHandler() *query.ListProductsHandler {
	return h.listHandler
}

// GetHandler exposes the single product query to the task pages.
func (h *ProductHandler) GetHandler() *query.GetProductHandler {
	return h.getHandler
}

// List renders GET /products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := domain.ListFilter{
		Search:   strings.TrimSpace(c.Query("search")),
		Category: c.Query("category"),
	}
	status := c.Query("status")
	switch status {
	case "active", "inactive":
		active := status == "active"
		filter.IsActive = &active
	}

	products, err := h.listHandler.Handle(c.UserContext(), query.ListProductsQuery{Filter: filter})
	if err != nil {
		return err
	}
	categories := h.activeCategories(c)
	return h.views.Render(c, fiber.StatusOK, "products/index", "products.title", fiber.Map{
		"Products":   products,
		"Categories": categories,
		"Search":     filter.Search,
		"Category":   filter.Category,
		"Status":     status,
	})
}

// Show renders GET /products/:id
func (h *ProductHandler) Show(c *fiber.Ctx) error {
	p, err := h.getHandler.Handle(c.UserContext(), query.GetProductQuery{ID: c.Params("id")})
	if err != nil {
		return err
	}
	return h.views.Render(c, fiber.StatusOK, "products/show", "products.title", fiber.Map{
		"Product": p,
	})
}

// New renders GET /products/new
func (h *ProductHandler) New(c *fiber.Ctx) error {
	values := fiber.Map{"prepTimeMinutes": "30", "prepIntervalHours": "8", "isActive": true}
	return h.renderForm(c, fiber.StatusOK, "", values, []IngredientRow{{Unit: "kg"}}, nil, "")
}

// Create handles POST /products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	return h.submit(c, "", func(form domain.ProductForm) (string, error) {
		p, err := h.createHandler.Handle(c.UserContext(), command.CreateProductCommand{Form: form})
		if err != nil {
			return "", err
		}
		return p.ID, nil
	})
}

// Edit renders GET /products/:id/edit
func (h *ProductHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	p, err := h.getHandler.Handle(c.UserContext(), query.GetProductQuery{ID: id})
	if err != nil {
		return err
	}
	values := fiber.Map{
		"name":              p.Name,
		"nameAr":            p.NameAr,
		"category":          p.Category,
		"description":       p.Description,
		"prepTimeMinutes":   strconv.Itoa(p.PrepTimeMinutes),
		"prepIntervalHours": strconv.Itoa(p.PrepIntervalHours),
		"isActive":          p.Active(),
		"image":             p.Image,
	}
	rows := make([]IngredientRow, 0, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		rows = append(rows, IngredientRow{
			IngredientID: ing.IngredientID,
			Name:         ing.Name,
			Quantity:     view.FormatNumber(ing.Quantity),
			Unit:         ing.Unit,
		})
	}
	return h.renderForm(c, fiber.StatusOK, id, values, rows, nil, "")
}

// Update handles POST /products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	return h.submit(c, id, func(form domain.ProductForm) (string, error) {
		_, err := h.updateHandler.Handle(c.UserContext(), command.UpdateProductCommand{ID: id, Form: form})
		return id, err
	})
}

// Delete handles POST /products/:id/delete
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.deleteHandler.Handle(c.UserContext(), command.DeleteProductCommand{ID: c.Params("id")}); err != nil {
		return err
	}
	return view.Redirect(c, "/products", "products.deleted")
}

// submit parses the form, applies a row action when one was pressed, and
// otherwise validates and saves.
func (h *ProductHandler) submit(c *fiber.Ctx, id string, save func(domain.ProductForm) (string, error)) error {
	items := h.inventoryItems(c)
	f := view.NewForm(c)
	form, values, rows, err := parseForm(f, items)
	if err != nil {
		return err
	}

	if action := f.String("action"); action != "" {
		if rows, ok := applyRowAction(action, rows); ok {
			return h.renderWith(c, fiber.StatusOK, id, values, rows, nil, "", items)
		}
	}

	if errs := f.Invalid(h.validator, form); errs != nil {
		return h.renderWith(c, fiber.StatusUnprocessableEntity, id, values, rows, errs, "", items)
	}

	savedID, err := save(form)
	if err != nil {
		msg, fields, fatal := view.Failure(err, h.views.T(c, "errors.unexpected"))
		if fatal != nil {
			return fatal
		}
		return h.renderWith(c, fiber.StatusUnprocessableEntity, id, values, rows, fields, msg, items)
	}
	if savedID == "" {
		return view.Redirect(c, "/products", "common.saved")
	}
	return view.Redirect(c, "/products/"+savedID, "common.saved")
}

func parseForm(f *view.Form, items []inventorydomain.Item) (domain.ProductForm, fiber.Map, []IngredientRow, error) {
	form := domain.ProductForm{
		Name:              f.String("name"),
		NameAr:            f.String("nameAr"),
		Category:          f.String("category"),
		Description:       f.String("description"),
		PrepTimeMinutes:   f.Int("prepTimeMinutes"),
		PrepIntervalHours: f.Int("prepIntervalHours"),
		IsActive:          f.Bool("isActive"),
		Ingredients:       []domain.IngredientForm{},
	}

	rawRows := f.Rows("ingredients")
	rows := make([]IngredientRow, 0, len(rawRows))
	for i, raw := range rawRows {
		row := withInventoryDefaults(IngredientRow{
			IngredientID: raw["ingredientId"],
			Name:         raw["name"],
			Quantity:     raw["quantity"],
			Unit:         raw["unit"],
		}, items)
		rows = append(rows, row)
		form.Ingredients = append(form.Ingredients, domain.IngredientForm{
			IngredientID: row.IngredientID,
			Name:         row.Name,
			Quantity:     f.ParseFloat(fmt.Sprintf("ingredients[%d].quantity", i), row.Quantity),
			Unit:         row.Unit,
		})
	}

	img, err := f.File("image")
	if err != nil {
		return form, nil, nil, err
	}
	form.Image = img

	values := fiber.Map{"isActive": form.IsActive}
	for _, key := range []string{"name", "nameAr", "category", "description", "prepTimeMinutes", "prepIntervalHours", "image"} {
		values[key] = f.String(key)
	}
	return form, values, rows, nil
}

// withInventoryDefaults copies the selected item's name, and its unit when the
// row has none.
func withInventoryDefaults(row IngredientRow, items []inventorydomain.Item) IngredientRow {
	if row.IngredientID == "" {
		return row
	}
	for _, it := range items {
		if it.ID != row.IngredientID {
			continue
		}
		row.Name = it.Name
		if row.Unit == "" && slices.Contains(domain.Units, it.Unit) {
			row.Unit = it.Unit
		}
		break
	}
	return row
}

// applyRowAction adds or removes an ingredient row. ok is false for unknown
// actions.
func applyRowAction(action string, rows []IngredientRow) ([]IngredientRow, bool) {
	switch {
	case action == actionAddIngredient:
		return append(rows, IngredientRow{Unit: "kg"}), true
	case strings.HasPrefix(action, actionRemoveIngredient):
		i, err := strconv.Atoi(strings.TrimPrefix(action, actionRemoveIngredient))
		if err != nil || i < 0 || i >= len(rows) {
			return rows, true
		}
		return slices.Delete(rows, i, i+1), true
	}
	return rows, false
}

func (h *ProductHandler) renderForm(c *fiber.Ctx, status int, id string, values fiber.Map, rows []IngredientRow, errs validation.Errors, msg string) error {
	return h.renderWith(c, status, id, values, rows, errs, msg, h.inventoryItems(c))
}

func (h *ProductHandler) renderWith(c *fiber.Ctx, status int, id string, values fiber.Map, rows []IngredientRow, errs validation.Errors, msg string, items []inventorydomain.Item) error {
	title := "products.newProduct"
	if id != "" {
		title = "products.editProduct"
	}
	return h.views.Render(c, status, "products/form", title, fiber.Map{
		"ID":          id,
		"Form":        values,
		"Ingredients": rows,
		"Errors":      errs,
		"Error":       msg,
		"Categories":  h.activeCategories(c),
		"Inventory":   items,
		"Units":       domain.Units,
	})
}

// The dropdowns degrade to empty lists when their source fails.

func (h *ProductHandler) activeCategories(c *fiber.Ctx) []categorydomain.Category {
	categories, err := h.categories.Handle(c.UserContext(), categoryquery.ListCategoriesQuery{ActiveOnly: true})
	if err != nil {
		logger.Warn(c.UserContext()).Err(err).Msg("Failed to load categories for the product pages")
	}
	return categories
}

func (h *ProductHandler) inventoryItems(c *fiber.Ctx) []inventorydomain.Item {
	items, err := h.inventory.Handle(c.UserContext(), inventoryquery.ListItemsQuery{})
	if err != nil {
		logger.Warn(c.UserContext()).Err(err).Msg("Failed to load inventory for the product form")
	}
	return items
}
