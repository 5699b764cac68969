package web

import (
	"github.com/gofiber/fiber/v2"

	authhttp "github.com/Nawaf-Almansour/prep-manger/internal/auth/delivery/http"
	categoryhttp "github.com/Nawaf-Almansour/prep-manger/internal/category/delivery/http"
	dashboardhttp "github.com/Nawaf-Almansour/prep-manger/internal/dashboard/delivery/http"
	inventoryhttp "github.com/Nawaf-Almansour/prep-manger/internal/inventory/delivery/http"
	producthttp "github.com/Nawaf-Almansour/prep-manger/internal/product/delivery/http"
	taskhttp "github.com/Nawaf-Almansour/prep-manger/internal/task/delivery/http"
	userhttp "github.com/Nawaf-Almansour/prep-manger/internal/user/delivery/http"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/middleware"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
)

// Handlers are the page handlers of every resource.
type Handlers struct {
	Auth        *authhttp.AuthHandler
	Dashboard   *dashboardhttp.DashboardHandler
	Inventory   *inventoryhttp.InventoryHandler
	Products    *producthttp.ProductHandler
	Tasks       *taskhttp.TaskHandler
	Categories  *categoryhttp.CategoryHandler
	Users       *userhttp.UserHandler
	Preferences *PreferencesHandler
}

var editors = []string{session.RoleSupervisor, session.RoleManager}

// SetupRoutes registers every page. Role guards reuse the sidebar's role
// lists so hidden entries are also unreachable.
func SetupRoutes(app *fiber.App, h Handlers, health *HealthChecker, loginLimiter middleware.Limiter) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(health.Quick())
	})
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ready := health.Ready(c.UserContext())
		return c.Status(readinessStatus(ready)).JSON(ready)
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	})

	// Public
	app.Get("/login", h.Auth.LoginPage)
	app.Post("/login", middleware.RateLimit(loginLimiter, h.Auth.TooManyAttempts), h.Auth.Login)
	app.Get("/register", h.Auth.RegisterPage)
	app.Post("/register", h.Auth.Register)
	app.Post("/logout", h.Auth.Logout)

	// Signed in
	auth := app.Group("", middleware.RequireAuth())
	requireEditor := middleware.RequireRole(editors...)

	auth.Get("/dashboard", h.Dashboard.Dashboard)
	auth.Get("/reports", middleware.RequireRole(view.RolesFor("/reports")...), h.Dashboard.Reports)

	auth.Get("/profile", h.Auth.Profile)
	auth.Post("/profile", h.Auth.UpdateProfile)
	auth.Post("/profile/password", h.Auth.ChangePassword)

	auth.Post("/preferences/sidebar", h.Preferences.ToggleSidebar)
	auth.Post("/preferences/locale", h.Preferences.SetLocale)

	// Inventory
	inventory := auth.Group("/inventory")
	inventory.Get("/", h.Inventory.List)
	inventory.Get("/new", middleware.RequireRole(session.RoleManager), h.Inventory.New)
	inventory.Post("/", middleware.RequireRole(session.RoleManager), h.Inventory.Create)
	inventory.Get("/:id", h.Inventory.Show)
	inventory.Get("/:id/edit", requireEditor, h.Inventory.Edit)
	inventory.Post("/:id", requireEditor, h.Inventory.Update)
	inventory.Post("/:id/restock", requireEditor, h.Inventory.Restock)

	// Products and their scheduled tasks
	products := auth.Group("/products")
	products.Get("/", h.Products.List)
	products.Get("/new", requireEditor, h.Products.New)
	products.Post("/", requireEditor, h.Products.Create)
	products.Get("/:id", h.Products.Show)
	products.Get("/:id/edit", requireEditor, h.Products.Edit)
	products.Post("/:id", requireEditor, h.Products.Update)
	products.Post("/:id/delete", requireEditor, h.Products.Delete)
	products.Get("/:id/schedule", requireEditor, h.Tasks.SchedulePage)
	products.Post("/:id/schedule", requireEditor, h.Tasks.Schedule)
	products.Get("/:id/tasks", requireEditor, h.Tasks.ProductTasks)

	// Tasks
	tasks := auth.Group("/tasks")
	tasks.Get("/", middleware.RequireRole(view.RolesFor("/tasks")...), h.Tasks.Index)
	tasks.Get("/today", h.Tasks.Today)
	tasks.Get("/my-tasks", h.Tasks.Mine)
	tasks.Get("/:id", h.Tasks.Show)
	tasks.Post("/:id/start", h.Tasks.Start)
	tasks.Post("/:id/complete", h.Tasks.Complete)
	tasks.Post("/:id/assign", requireEditor, h.Tasks.Assign)
	tasks.Post("/:id/late", requireEditor, h.Tasks.MarkLate)
	tasks.Post("/:id/usage", h.Tasks.UpdateUsage)
	tasks.Post("/:id/comments", h.Tasks.AddComment)
	tasks.Post("/:id/comments/:commentId", h.Tasks.UpdateComment)
	tasks.Post("/:id/comments/:commentId/delete", h.Tasks.DeleteComment)

	// Categories
	categories := auth.Group("/categories", middleware.RequireRole(view.RolesFor("/categories")...))
	categories.Get("/", h.Categories.List)
	categories.Post("/", h.Categories.Create)
	categories.Post("/:id", h.Categories.Update)
	categories.Post("/:id/delete", h.Categories.Delete)

	// Users
	users := auth.Group("/users", middleware.RequireRole(view.RolesFor("/users")...))
	users.Get("/", h.Users.List)
	users.Get("/new", h.Users.New)
	users.Post("/", h.Users.Create)
	users.Get("/:id/edit", h.Users.Edit)
	users.Post("/:id", h.Users.Update)
}
