package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

const localsKey = "session"

type Options struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Manager binds sessions to the request cookie.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

func NewManager(store Store, opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = "prep_session"
	}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	return &Manager{
		store:      store,
		cookieName: opts.CookieName,
		ttl:        opts.TTL,
		secure:     opts.Secure,
		now:        time.Now,
	}
}

// Load returns the request's session, or a fresh unsaved one.
func (m *Manager) Load(c *fiber.Ctx) *Session {
	if id := c.Cookies(m.cookieName); id != "" {
		s, err := m.store.Load(c.UserContext(), id)
		if err == nil {
			return s
		}
		if !errors.Is(err, ErrNotFound) {
			logger.Warn(c.UserContext()).Err(err).Msg("Failed to load session, starting a new one")
		}
	}
	return &Session{ID: uuid.NewString(), CreatedAt: m.now()}
}

// Save persists s and refreshes the cookie.
func (m *Manager) Save(c *fiber.Ctx, s *Session) error {
	if err := m.store.Save(c.UserContext(), s, m.ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	cookie := &fiber.Cookie{
		Name:     m.cookieName,
		Value:    s.ID,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if s.RememberMe {
		cookie.Expires = m.now().Add(m.ttl)
	}
	c.Cookie(cookie)
	s.dirty = false
	return nil
}

// Regenerate moves s to a new id, used on sign-in.
func (m *Manager) Regenerate(c *fiber.Ctx, s *Session) {
	if err := m.store.Delete(c.UserContext(), s.ID); err != nil {
		logger.Warn(c.UserContext()).Err(err).Msg("Failed to drop previous session")
	}
	s.ID = uuid.NewString()
	s.dirty = true
}

// Destroy deletes s and expires the cookie.
func (m *Manager) Destroy(c *fiber.Ctx, s *Session) error {
	s.destroyed = true
	c.ClearCookie(m.cookieName)
	if err := m.store.Delete(c.UserContext(), s.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Middleware loads the session into c.Locals and saves it after the handler
// when it changed.
func (m *Manager) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := m.Load(c)
		c.Locals(localsKey, s)

		err := c.Next()

		if s.Dirty() {
			if saveErr := m.Save(c, s); saveErr != nil {
				logger.Error(c.UserContext()).Err(saveErr).Msg("Failed to persist session")
			}
		}
		return err
	}
}

// FromCtx returns the session loaded by Middleware, or nil.
func FromCtx(c *fiber.Ctx) *Session {
	s, _ := c.Locals(localsKey).(*Session)
	return s
}
