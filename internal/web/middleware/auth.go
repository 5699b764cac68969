package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/kafka"
	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

// SessionContext moves the session's credentials into the request context so
// use cases can call the API on the user's behalf. A token whose exp claim has
// passed is dropped before any call is made.
func SessionContext(now func() time.Time) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := session.FromCtx(c)
		if s == nil || s.Token == "" {
			return c.Next()
		}
		if !s.Authenticated(now()) {
			logger.Info(c.UserContext()).Msg("Session token expired, signing out")
			s.SignOut()
			return c.Next()
		}

		ctx := apiclient.WithToken(c.UserContext(), s.Token)
		if s.User != nil {
			ctx = kafka.WithActor(ctx, kafka.Actor{ID: s.User.ID, Role: s.User.EffectiveRole()})
			ctx = logger.WithUserID(ctx, s.User.ID)
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// RequireAuth redirects anonymous browsers to /login.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := session.FromCtx(c)
		if s == nil || s.Token == "" || s.User == nil {
			if wantsJSON(c) {
				return fiber.ErrUnauthorized
			}
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireRole answers 403 unless the signed-in user holds one of roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := session.FromCtx(c)
		if s == nil || s.User == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		if !s.User.HasRole(roles...) {
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/") || c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}
