package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient/apitest"
	"github.com/Nawaf-Almansour/prep-manger/internal/metrics"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/preferences"
	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
	"github.com/Nawaf-Almansour/prep-manger/internal/web"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/middleware"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
	"github.com/Nawaf-Almansour/prep-manger/kafka"
	"github.com/Nawaf-Almansour/prep-manger/pkg/i18n"
)

const (
	categoryJSON = `{"_id":"c1","name":"Mezze","nameAr":"مقبلات","isActive":true}`
	itemJSON     = `{"_id":"i1","name":"Chickpeas","nameAr":"حمص حب","category":"Dry goods","unit":"kg","currentQuantity":2,"minThreshold":5,"maxThreshold":20,"status":"low_stock"}`
	productJSON  = `{"_id":"p1","name":"Hummus","nameAr":"حمص","category":"Mezze","prepTimeMinutes":30,"prepIntervalHours":4,"isActive":true,"ingredients":[{"ingredientId":"i1","name":"Chickpeas","quantity":1.5,"unit":"kg"}]}`
	taskJSON     = `{"_id":"t1","productId":{"_id":"p1","name":"Hummus"},"productName":"Hummus","status":"in_progress","scheduledAt":"2026-10-19T08:00:00Z","priority":"high","assignedTo":{"_id":"u2","name":"Sara"},"inventoryUsage":[{"itemId":"i1","quantityUsed":1.5,"unit":"kg"}]}`
	userJSON     = `{"_id":"u2","name":"Sara","email":"sara@example.com","role":"prep","isActive":true}`
	managerJSON  = `{"_id":"u1","name":"Mona","email":"mona@example.com","role":"manager"}`
)

func fakeAPI(t *testing.T) *apitest.Server {
	t.Helper()
	tasks := apitest.Reply{Body: `{"data":{"tasks":[` + taskJSON + `]}}`}
	items := apitest.Reply{Body: `{"data":{"items":[` + itemJSON + `]}}`}
	return apitest.New(t, map[string]apitest.Reply{
		"GET /auth/me":             {Body: `{"data":` + managerJSON + `}`},
		"GET /categories":          {Body: `{"data":{"categories":[` + categoryJSON + `]}}`},
		"GET /inventory":           items,
		"GET /inventory/low-stock": items,
		"GET /inventory/i1":        {Body: `{"data":` + itemJSON + `}`},
		"GET /products":            {Body: `{"data":{"products":[` + productJSON + `]}}`},
		"GET /products/p1":         {Body: `{"data":{"product":` + productJSON + `}}`},
		"GET /tasks/all":           tasks,
		"GET /tasks/today":         tasks,
		"GET /tasks/my-tasks":      tasks,
		"GET /tasks/product/p1":    tasks,
		"GET /tasks/t1":            {Body: `{"data":` + taskJSON + `}`},
		"GET /tasks/t1/comments":   {Body: `{"data":[{"_id":"m1","taskId":"t1","userId":{"_id":"u1","name":"Mona"},"comment":"Soak overnight"}]}`},
		"GET /users":               {Body: `{"data":{"users":[` + userJSON + `]}}`},
		"GET /users/u2":            {Body: `{"data":` + userJSON + `}`},
		"GET /reports/dashboard":   {Body: `{"data":{"totalTasks":{"count":12,"changePercent":5},"completionRate":{"percent":80,"changePercent":-3},"avgPrepTime":{"hours":1.5,"changePercent":-10},"onTimeTasks":{"percent":90,"changePercent":2}}}`},
	})
}

func newTestApp(t *testing.T, api *apitest.Server) (*fiber.App, session.Store) {
	t.Helper()
	tr, err := i18n.New("en")
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	store := session.NewMemoryStore()
	views := view.NewRenderer(tr, time.UTC)
	sessions := session.NewManager(store, session.Options{CookieName: "sid", TTL: time.Hour})
	effects := mutation.NewEffects(querycache.New(querycache.NewMemoryBackend(), time.Minute, m), kafka.NopPublisher{})
	prefs := preferences.NopRepository{}

	handlers, err := initializeHandlers(api.Client(), validation.New(), effects, views, sessions, prefs, m, tr)
	require.NoError(t, err)

	app := web.NewServer(web.ServerConfig{
		ServiceName:    "dashboard-test",
		AllowedOrigins: "*",
		Views:          views,
		Sessions:       sessions,
		Preferences:    prefs,
		Metrics:        m,
		Health:         web.NewHealthChecker("dashboard-test", nil),
		LoginLimiter:   middleware.NewMemoryLimiter(100, time.Minute),
	}, handlers)
	return app, store
}

func signIn(t *testing.T, store session.Store, id, locale string) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), &session.Session{
		ID:     id,
		Token:  "manager-token",
		User:   &session.Principal{ID: "u1", Name: "Mona", Email: "mona@example.com", Role: session.RoleManager},
		Locale: locale,
	}, time.Hour))
}

func do(t *testing.T, app *fiber.App, req *http.Request, sid string) (int, string) {
	t.Helper()
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestEveryPageRenders(t *testing.T) {
	pages := []struct {
		path   string
		public bool
		want   string
	}{
		{path: "/login", public: true},
		{path: "/register", public: true},
		{path: "/dashboard"},
		{path: "/reports"},
		{path: "/profile", want: "mona@example.com"},
		{path: "/inventory"},
		{path: "/inventory/new"},
		{path: "/inventory/i1", want: "Chickpeas"},
		{path: "/inventory/i1/edit", want: "Chickpeas"},
		{path: "/products"},
		{path: "/products/new"},
		{path: "/products/p1", want: "Hummus"},
		{path: "/products/p1/edit", want: "Hummus"},
		{path: "/products/p1/schedule", want: "Hummus"},
		{path: "/products/p1/tasks", want: "Hummus"},
		{path: "/tasks"},
		{path: "/tasks/today"},
		{path: "/tasks/my-tasks"},
		{path: "/tasks/t1", want: "Hummus"},
		{path: "/categories", want: "Mezze"},
		{path: "/categories?edit=c1", want: "Mezze"},
		{path: "/users"},
		{path: "/users/new"},
		{path: "/users/u2/edit", want: "sara@example.com"},
	}

	for _, locale := range []string{"en", "ar"} {
		api := fakeAPI(t)
		app, store := newTestApp(t, api)
		signIn(t, store, "manager-"+locale, locale)

		for _, p := range pages {
			t.Run(locale+p.path, func(t *testing.T) {
				target, sid := p.path, "manager-"+locale
				if p.public {
					target, sid = p.path+"?lang="+locale, ""
				}

				status, body := do(t, app, httptest.NewRequest(fiber.MethodGet, target, nil), sid)

				require.Equal(t, fiber.StatusOK, status, body)
				assert.Contains(t, body, `lang="`+locale+`"`)
				if locale == "ar" {
					assert.Contains(t, body, `dir="rtl"`)
				}
				if p.want != "" {
					assert.Contains(t, body, p.want)
				}
			})
		}
	}
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func writes(api *apitest.Server) []apitest.Call {
	var out []apitest.Call
	for _, c := range api.Calls() {
		if c.Method != http.MethodGet {
			out = append(out, c)
		}
	}
	return out
}

func TestInvalidFormsStayLocal(t *testing.T) {
	tests := []struct {
		name string
		path string
		form url.Values
		want string
	}{
		{
			name: "product without ingredients",
			path: "/products",
			form: url.Values{
				"name":              {"Hummus"},
				"category":          {"Mezze"},
				"prepTimeMinutes":   {"30"},
				"prepIntervalHours": {"4"},
				"isActive":          {"on"},
			},
			want: "At least one ingredient is required",
		},
		{
			name: "inventory item with max equal to min",
			path: "/inventory",
			form: url.Values{
				"name":            {"Tahini"},
				"category":        {"Dry goods"},
				"unit":            {"kg"},
				"currentQuantity": {"3"},
				"minThreshold":    {"5"},
				"maxThreshold":    {"5"},
			},
			want: "Max threshold must be greater than min threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := fakeAPI(t)
			app, store := newTestApp(t, api)
			signIn(t, store, "manager", "en")

			status, body := do(t, app, postForm(tt.path, tt.form), "manager")

			assert.Equal(t, fiber.StatusUnprocessableEntity, status)
			assert.Contains(t, body, tt.want)
			assert.Empty(t, writes(api), "nothing is sent upstream")
		})
	}
}
