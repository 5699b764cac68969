// Package seed fills a Prep Manager API with demo categories, inventory,
// products and tasks through the same REST endpoints the dashboard uses.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	authdomain "github.com/Nawaf-Almansour/prep-manger/internal/auth/domain"
	categorydomain "github.com/Nawaf-Almansour/prep-manger/internal/category/domain"
	inventorydomain "github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	productdomain "github.com/Nawaf-Almansour/prep-manger/internal/product/domain"
	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

var (
	ErrLoginFailed = errors.New("seed login failed")
	ErrNoInventory = errors.New("no inventory items available")
)

// Delays are the pauses between consecutive writes of each phase.
type Delays struct {
	CategoryDelete time.Duration
	Category       time.Duration
	Item           time.Duration
	Product        time.Duration
	Task           time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		CategoryDelete: 100 * time.Millisecond,
		Category:       150 * time.Millisecond,
		Item:           200 * time.Millisecond,
		Product:        300 * time.Millisecond,
		Task:           200 * time.Millisecond,
	}
}

type Options struct {
	Email    string
	Password string
	Delays   Delays
	Now      func() time.Time
}

// Summary counts what each phase left available.
type Summary struct {
	Categories   int
	Items        int
	Products     int
	Tasks        int
	TasksPlanned int
}

type Repositories struct {
	Auth       authdomain.AuthRepository
	Categories categorydomain.CategoryRepository
	Inventory  inventorydomain.InventoryRepository
	Products   productdomain.ProductRepository
}

type Seeder struct {
	api   *apiclient.Client
	repos Repositories
	out   *Reporter
	opts  Options
}

func NewSeeder(api *apiclient.Client, repos Repositories, out *Reporter, opts Options) *Seeder {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Seeder{api: api, repos: repos, out: out, opts: opts}
}

// Run executes every phase in order. Only a failed login or an empty
// inventory stop it; other failures are reported and skipped.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	s.out.Title("Prep Manager seed")

	res, err := s.repos.Auth.Login(ctx, authdomain.LoginForm{Email: s.opts.Email, Password: s.opts.Password})
	if err != nil {
		s.out.Fail("Login failed for %s: %s", s.opts.Email, apiclient.Message(err, err.Error()))
		return sum, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	s.out.OK("Logged in as %s", s.opts.Email)
	ctx = apiclient.WithToken(ctx, res.Token)

	sum.Categories = s.seedCategories(ctx)

	items := s.seedInventory(ctx)
	sum.Items = len(items)
	if len(items) == 0 {
		s.out.Fail("No inventory items available, stopping")
		return sum, ErrNoInventory
	}

	products := s.seedProducts(ctx, items)
	sum.Products = len(products)

	if len(products) == 0 {
		s.out.Skip("No products to create tasks for")
	} else {
		sum.Tasks, sum.TasksPlanned = s.seedTasks(ctx, products)
	}

	s.out.Summary(sum)
	return sum, nil
}

func (s *Seeder) seedCategories(ctx context.Context) int {
	s.out.Phase("Seeding categories")

	existing, err := s.repos.Categories.List(ctx, false)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to list existing categories")
	}
	if len(existing) > 0 {
		s.out.Skip("Deleting %d existing categories", len(existing))
		for _, c := range existing {
			if err := s.repos.Categories.DeletePermanent(ctx, c.ID); err != nil {
				logger.Debug(ctx).Err(err).Str("category_id", c.ID).Msg("Category delete failed")
			}
			if !s.pause(ctx, s.opts.Delays.CategoryDelete) {
				return 0
			}
		}
	}

	created := 0
	for _, form := range Categories {
		if _, err := s.repos.Categories.Create(ctx, form); err != nil {
			s.out.Fail("%s: %s", form.Name, apiclient.Message(err, err.Error()))
			continue
		}
		created++
		s.out.OK("%s (%s)", form.Name, form.NameAr)
		if !s.pause(ctx, s.opts.Delays.Category) {
			break
		}
	}
	return created
}

func (s *Seeder) seedInventory(ctx context.Context) []inventorydomain.Item {
	s.out.Phase("Seeding inventory items")

	var created []inventorydomain.Item
	for _, form := range InventoryItems {
		it, err := s.repos.Inventory.Create(ctx, form)
		switch {
		case err == nil:
			it.Name = form.Name
			created = append(created, *it)
			s.out.OK("%s", form.Name)
		case IsDuplicate(err):
			s.out.Skip("%s already exists", form.Name)
		default:
			s.out.Fail("%s: %s", form.Name, apiclient.Message(err, err.Error()))
		}
		if !s.pause(ctx, s.opts.Delays.Item) {
			return created
		}
	}

	all, err := s.repos.Inventory.List(ctx)
	if err != nil {
		s.out.Skip("Failed to fetch inventory, using the %d created items", len(created))
		return created
	}
	s.out.OK("%d inventory items available (%d new)", len(all), len(created))
	return all
}

func (s *Seeder) seedProducts(ctx context.Context, items []inventorydomain.Item) []productdomain.Product {
	forms := BuildProducts(items)
	s.out.Phase("Seeding products (%d of %d recipes resolved)", len(forms), len(Recipes))

	var created []productdomain.Product
	for _, form := range forms {
		p, err := s.repos.Products.Create(ctx, form)
		switch {
		case err == nil:
			p.Name = form.Name
			p.PrepIntervalHours = form.PrepIntervalHours
			created = append(created, *p)
			s.out.OK("%s", form.Name)
		case IsDuplicate(err):
			s.out.Skip("%s already exists", form.Name)
		default:
			s.out.Fail("%s: %s", form.Name, apiclient.Message(err, err.Error()))
		}
		if !s.pause(ctx, s.opts.Delays.Product) {
			return created
		}
	}

	all, err := s.repos.Products.List(ctx, productdomain.ListFilter{})
	if err != nil {
		s.out.Skip("Failed to fetch products, using the %d created", len(created))
		return created
	}
	s.out.OK("%d products available (%d new)", len(all), len(created))
	return all
}

func (s *Seeder) seedTasks(ctx context.Context, products []productdomain.Product) (created, planned int) {
	s.out.Phase("Seeding tasks")

	tasks := BuildTasks(products, s.opts.Now())
	for _, t := range tasks {
		if _, err := s.api.Post(ctx, "/tasks", t); err != nil {
			s.out.Fail("Task for %s: %s", t.ProductName, apiclient.Message(err, err.Error()))
		} else {
			created++
			s.out.OK("Task for %s (%s)", t.ProductName, t.Status)
		}
		if !s.pause(ctx, s.opts.Delays.Task) {
			break
		}
	}
	return created, len(tasks)
}

// pause waits d, returning false when ctx ends first.
func (s *Seeder) pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

var duplicateMarkers = []string{"duplicate", "already exists", "E11000"}

// IsDuplicate reports whether a create failed because the record exists.
// The API reports some unique index violations as a 500 whose message is
// "Internal Server Error"; a 500 with no message at all is a real failure.
func IsDuplicate(err error) bool {
	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, marker := range duplicateMarkers {
		if strings.Contains(apiErr.Message, marker) {
			return true
		}
	}
	if !apiErr.StatusOnly && strings.Contains(apiErr.Message, "Internal Server Error") {
		return true
	}
	return strings.Contains(apiErr.Stack, "E11000")
}

// BuildProducts turns the recipes into product forms. A recipe with an
// ingredient missing from items is dropped.
func BuildProducts(items []inventorydomain.Item) []productdomain.ProductForm {
	ids := make(map[string]string, len(items))
	for _, it := range items {
		ids[it.Name] = it.ID
	}

	var forms []productdomain.ProductForm
recipes:
	for _, r := range Recipes {
		form := productdomain.ProductForm{
			Name:              r.Name,
			Category:          r.Category,
			Description:       r.Description,
			PrepTimeMinutes:   r.PrepTimeMinutes,
			PrepIntervalHours: r.PrepIntervalHours,
			IsActive:          true,
		}
		for _, ing := range r.Ingredients {
			id, ok := ids[ing.Name]
			if !ok || id == "" {
				continue recipes
			}
			form.Ingredients = append(form.Ingredients, productdomain.IngredientForm{
				IngredientID: id,
				Name:         ing.Name,
				Quantity:     ing.Quantity,
				Unit:         ing.Unit,
			})
		}
		forms = append(forms, form)
	}
	return forms
}

// Task is the body posted to /tasks. The seed sets status directly, which the
// dashboard's own forms never do.
type Task struct {
	ProductID       string     `json:"productId"`
	ProductName     string     `json:"productName"`
	ScheduledTime   time.Time  `json:"scheduledTime"`
	PrepTimeMinutes int        `json:"prepTimeMinutes"`
	Notes           string     `json:"notes"`
	Status          string     `json:"status"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

// BuildTasks plans three tasks per product: one completed an interval ago,
// one in two hours and one an interval ahead.
func BuildTasks(products []productdomain.Product, now time.Time) []Task {
	tasks := make([]Task, 0, len(products)*3)
	for _, p := range products {
		interval := time.Duration(p.PrepIntervalHours) * time.Hour
		prep := p.PrepTimeMinutes
		if prep == 0 {
			prep = 30
		}

		past := now.Add(-interval).UTC()
		tasks = append(tasks,
			Task{
				ProductID: p.ID, ProductName: p.Name, ScheduledTime: past, PrepTimeMinutes: prep,
				Notes: fmt.Sprintf("Completed %s preparation", p.Name), Status: "completed", CompletedAt: &past,
			},
			Task{
				ProductID: p.ID, ProductName: p.Name, ScheduledTime: now.Add(2 * time.Hour).UTC(), PrepTimeMinutes: prep,
				Notes: fmt.Sprintf("Today's %s batch", p.Name), Status: "scheduled",
			},
			Task{
				ProductID: p.ID, ProductName: p.Name, ScheduledTime: now.Add(interval).UTC(), PrepTimeMinutes: prep,
				Notes: fmt.Sprintf("Next %s preparation", p.Name), Status: "scheduled",
			},
		)
	}
	return tasks
}
