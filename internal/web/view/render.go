package view

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/pkg/i18n"
)

//go:embed templates
var templateFS embed.FS

const mainLayout = "layouts/main"

// Renderer renders pages inside the dashboard layout.
type Renderer struct {
	tr  *i18n.Translator
	loc *time.Location
}

func NewRenderer(tr *i18n.Translator, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{tr: tr, loc: loc}
}

func (r *Renderer) Translator() *i18n.Translator {
	return r.tr
}

func (r *Renderer) Location() *time.Location {
	return r.loc
}

// Engine builds the Fiber view engine over the embedded templates.
func (r *Renderer) Engine() *html.Engine {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("embedded templates missing: %v", err))
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFuncMap(template.FuncMap{
		"t":        r.tr.T,
		"dir":      r.tr.Dir,
		"fmtTime":  r.formatTime,
		"fmtDate":  r.formatDate,
		"fmtNum":   FormatNumber,
		"add":      func(a, b int) int { return a + b },
		"pctWidth": func(p int) int { return min(max(p, 0), 100) },
		"hasRole": func(user *session.Principal, roles ...string) bool {
			return user != nil && user.HasRole(roles...)
		},
		"statusLabel": func(locale, status string) string {
			key := "status." + status
			if label := r.tr.T(locale, key); label != key {
				return label
			}
			return status
		},
		"join": strings.Join,
		"dict": dict,
	})
	return engine
}

// dict builds a map from key/value pairs so partials can take several values.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict expects key/value pairs, got %d values", len(pairs))
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

func (r *Renderer) formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(r.loc).Format("2006-01-02 15:04")
}

func (r *Renderer) formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(r.loc).Format("2006-01-02")
}

// FormatNumber prints n without trailing zeros.
func FormatNumber(n float64) string {
	if n == math.Trunc(n) {
		return strconv.FormatFloat(n, 'f', 0, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Locale returns the locale chosen for the request.
func Locale(c *fiber.Ctx) string {
	if s := session.FromCtx(c); s != nil && s.Locale != "" {
		return s.Locale
	}
	if loc, ok := c.Locals("locale").(string); ok && loc != "" {
		return loc
	}
	return i18n.English
}

// T translates key in the request's locale.
func (r *Renderer) T(c *fiber.Ctx, key string) string {
	return r.tr.T(Locale(c), key)
}

// Render renders name within the main layout with the common page data.
func (r *Renderer) Render(c *fiber.Ctx, status int, name, titleKey string, data fiber.Map) error {
	return c.Status(status).Render(name, r.pageData(c, titleKey, data), mainLayout)
}

// RenderBare renders name without the sidebar layout (login, errors).
func (r *Renderer) RenderBare(c *fiber.Ctx, status int, name, titleKey string, data fiber.Map) error {
	return c.Status(status).Render(name, r.pageData(c, titleKey, data), "layouts/bare")
}

func (r *Renderer) pageData(c *fiber.Ctx, titleKey string, data fiber.Map) fiber.Map {
	locale := Locale(c)
	s := session.FromCtx(c)

	page := fiber.Map{
		"Locale":  locale,
		"Dir":     r.tr.Dir(locale),
		"Locales": r.tr.Locales(),
		"Title":   r.tr.T(locale, titleKey),
		"Path":    c.Path(),
		"Year":    time.Now().In(r.loc).Year(),
	}
	if s != nil {
		page["User"] = s.User
		page["Nav"] = VisibleNav(s.User, c.Path())
		page["SidebarCollapsed"] = s.SidebarCollapsed
		page["Flash"] = s.TakeFlash()
	}
	for k, v := range data {
		page[k] = v
	}
	return page
}

// Redirect stores a flash message (a translation key) and redirects with 303.
func Redirect(c *fiber.Ctx, to, flashKey string) error {
	if s := session.FromCtx(c); s != nil && flashKey != "" {
		s.SetFlash(flashKey)
	}
	return c.Redirect(to, fiber.StatusSeeOther)
}
