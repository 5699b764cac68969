package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
)

func TestMemoryLimiterSlidingWindow(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		allowed, _, _, err := l.Allow(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, remaining, _, _ := l.Allow(context.Background(), "1.2.3.4")
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, _, _, _ = l.Allow(context.Background(), "5.6.7.8")
	assert.True(t, allowed, "other clients keep their own window")

	now = now.Add(61 * time.Second)
	allowed, _, _, _ = l.Allow(context.Background(), "1.2.3.4")
	assert.True(t, allowed)
}

func TestRateLimitRendersLimitedHandler(t *testing.T) {
	app := fiber.New()
	limited := func(c *fiber.Ctx) error { return c.Status(fiber.StatusTooManyRequests).SendString("slow down") }
	app.Post("/login", RateLimit(NewMemoryLimiter(1, time.Minute), limited), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("X-RateLimit-Limit"))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func withSession(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("session", s)
		return c.Next()
	}
}

func TestSessionContextDropsExpiredToken(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s := &session.Session{Token: "tok", TokenExpiresAt: now.Add(-time.Minute), User: &session.Principal{ID: "u1", Role: "prep"}}

	app := fiber.New()
	var token string
	app.Get("/", withSession(s), SessionContext(func() time.Time { return now }), func(c *fiber.Ctx) error {
		token = apiclient.TokenFromContext(c.UserContext())
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, s.User)
}

func TestSessionContextAttachesToken(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s := &session.Session{Token: "tok", TokenExpiresAt: now.Add(time.Hour), User: &session.Principal{ID: "u1", Role: "prep"}}

	app := fiber.New()
	var token string
	app.Get("/", withSession(s), SessionContext(func() time.Time { return now }), func(c *fiber.Ctx) error {
		token = apiclient.TokenFromContext(c.UserContext())
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestGuards(t *testing.T) {
	tests := []struct {
		name   string
		s      *session.Session
		status int
	}{
		{"anonymous is sent to login", &session.Session{}, fiber.StatusSeeOther},
		{"prep is forbidden", &session.Session{Token: "t", User: &session.Principal{Role: "prep"}}, fiber.StatusForbidden},
		{"admin counts as manager", &session.Session{Token: "t", User: &session.Principal{Role: "admin"}}, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/users", withSession(tt.s), RequireAuth(), RequireRole(session.RoleManager), func(c *fiber.Ctx) error {
				return c.SendString("users")
			})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/users", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
