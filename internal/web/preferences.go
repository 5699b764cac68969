package web

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/Nawaf-Almansour/prep-manger/internal/preferences"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
)

// PreferencesHandler stores the sidebar and language choices.
type PreferencesHandler struct {
	prefs preferences.Repository
	known func(locale string) bool
}

func NewPreferencesHandler(prefs preferences.Repository, known func(locale string) bool) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs, known: known}
}

// ToggleSidebar handles POST /preferences/sidebar
func (h *PreferencesHandler) ToggleSidebar(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	s.SetSidebarCollapsed(!s.SidebarCollapsed)
	preferences.Store(c.UserContext(), h.prefs, s)
	return c.Redirect(backTo(c), fiber.StatusSeeOther)
}

// SetLocale handles POST /preferences/locale
func (h *PreferencesHandler) SetLocale(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	if locale := c.FormValue("locale"); h.known(locale) {
		s.SetLocale(locale)
		preferences.Store(c.UserContext(), h.prefs, s)
	}
	return c.Redirect(backTo(c), fiber.StatusSeeOther)
}

// backTo returns the local page the form was posted from.
func backTo(c *fiber.Ctx) string {
	if ref, err := url.Parse(c.Get(fiber.HeaderReferer)); err == nil && ref.Path != "" && ref.Host == c.Hostname() {
		if ref.RawQuery != "" {
			return ref.Path + "?" + ref.RawQuery
		}
		return ref.Path
	}
	return "/dashboard"
}
