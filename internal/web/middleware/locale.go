package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nawaf-Almansour/prep-manger/internal/preferences"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/pkg/i18n"
)

// Locale resolves the request locale. ?lang= switches it and is remembered
// for the user; otherwise the session choice wins over Accept-Language.
func Locale(tr *i18n.Translator, prefs preferences.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := session.FromCtx(c)

		if lang := c.Query("lang"); lang != "" && tr.Supported(lang) && s != nil {
			if lang != s.Locale {
				s.SetLocale(lang)
				preferences.Store(c.UserContext(), prefs, s)
			}
		}

		if s == nil || s.Locale == "" {
			c.Locals("locale", tr.Negotiate(c.Get(fiber.HeaderAcceptLanguage)))
		}
		return c.Next()
	}
}
