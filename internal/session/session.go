package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RolePrep       = "prep"
	RoleSupervisor = "supervisor"
	RoleManager    = "manager"
	RoleAdmin      = "admin"
)

// Principal is the signed-in user as returned by the API.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// EffectiveRole maps admin onto manager; every other role is used as is.
func (p Principal) EffectiveRole() string {
	if p.Role == RoleAdmin {
		return RoleManager
	}
	return p.Role
}

// HasRole reports whether the principal's effective role is one of roles.
func (p Principal) HasRole(roles ...string) bool {
	role := p.EffectiveRole()
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the server-side state behind the session cookie.
type Session struct {
	ID               string     `json:"id"`
	Token            string     `json:"token,omitempty"`
	TokenExpiresAt   time.Time  `json:"tokenExpiresAt"`
	User             *Principal `json:"user,omitempty"`
	Locale           string     `json:"locale,omitempty"`
	SidebarCollapsed bool       `json:"sidebarCollapsed"`
	RememberMe       bool       `json:"rememberMe"`
	Flash            string     `json:"flash,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`

	dirty     bool
	destroyed bool
}

// Authenticated reports whether the session holds a token that has not expired.
func (s *Session) Authenticated(now time.Time) bool {
	if s == nil || s.Token == "" || s.User == nil {
		return false
	}
	return s.TokenExpiresAt.IsZero() || now.Before(s.TokenExpiresAt)
}

func (s *Session) SignIn(token string, user Principal, rememberMe bool) {
	s.Token = token
	s.User = &user
	s.RememberMe = rememberMe
	s.TokenExpiresAt, _ = TokenExpiry(token)
	s.dirty = true
}

// SignOut drops the credentials but keeps UI preferences.
func (s *Session) SignOut() {
	s.Token = ""
	s.User = nil
	s.TokenExpiresAt = time.Time{}
	s.dirty = true
}

func (s *Session) SetUser(user Principal) {
	s.User = &user
	s.dirty = true
}

func (s *Session) SetLocale(locale string) {
	if s.Locale != locale {
		s.Locale = locale
		s.dirty = true
	}
}

func (s *Session) SetSidebarCollapsed(collapsed bool) {
	if s.SidebarCollapsed != collapsed {
		s.SidebarCollapsed = collapsed
		s.dirty = true
	}
}

func (s *Session) SetFlash(msg string) {
	s.Flash = msg
	s.dirty = true
}

// TakeFlash returns the pending flash message and clears it.
func (s *Session) TakeFlash() string {
	msg := s.Flash
	if msg != "" {
		s.Flash = ""
		s.dirty = true
	}
	return msg
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool {
	return s.dirty && !s.destroyed
}

// TokenExpiry reads the exp claim without verifying the signature; the API
// remains the authority on validity.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
