package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/auth/domain"
	"github.com/Nawaf-Almansour/prep-manger/internal/auth/usecase/command"
	"github.com/Nawaf-Almansour/prep-manger/internal/auth/usecase/query"
	"github.com/Nawaf-Almansour/prep-manger/internal/metrics"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/preferences"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
)

// AuthHandler serves sign-in, sign-up and the profile pages
type AuthHandler struct {
	// Command handlers
	loginHandler          *command.LoginHandler
	registerHandler       *command.RegisterHandler
	updateProfileHandler  *command.UpdateProfileHandler
	changePasswordHandler *command.ChangePasswordHandler

	// Query handlers
	meHandler *query.MeHandler

	effects   *mutation.Effects
	validator *validation.Validator
	views     *view.Renderer
	sessions  *session.Manager
	prefs     preferences.Repository
	metrics   *metrics.Metrics
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	repo domain.AuthRepository,
	v *validation.Validator,
	effects *mutation.Effects,
	views *view.Renderer,
	sessions *session.Manager,
	prefs preferences.Repository,
	m *metrics.Metrics,
) *AuthHandler {
	return &AuthHandler{
		loginHandler:          command.NewLoginHandler(repo, v, effects),
		registerHandler:       command.NewRegisterHandler(repo, v, effects),
		updateProfileHandler:  command.NewUpdateProfileHandler(repo, v, effects),
		changePasswordHandler: command.NewChangePasswordHandler(repo, v, effects),
		meHandler:             query.NewMeHandler(repo, effects.Cache()),
		effects:               effects,
		validator:             v,
		views:                 views,
		sessions:              sessions,
		prefs:                 prefs,
		metrics:               m,
	}
}

// LoginPage renders GET /login
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if session.FromCtx(c).Authenticated(time.Now()) {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return h.views.RenderBare(c, fiber.StatusOK, "auth/login", "auth.login", fiber.Map{"Form": fiber.Map{}})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	f := view.NewForm(c)
	form := domain.LoginForm{
		Email:      f.String("email"),
		Password:   f.String("password"),
		RememberMe: f.Bool("rememberMe"),
	}
	values := fiber.Map{"email": form.Email, "rememberMe": form.RememberMe}

	if errs := f.Invalid(h.validator, form); errs != nil {
		return h.renderLogin(c, values, errs, "")
	}

	res, err := h.loginHandler.Handle(c.UserContext(), command.LoginCommand{Form: form})
	if err != nil {
		// a 401 here means bad credentials, not an expired session
		errs, _ := validation.AsErrors(err)
		return h.renderLogin(c, values, errs, apiclient.Message(err, h.views.T(c, "auth.loginFailed")))
	}

	h.signIn(c, res, form.RememberMe)
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// TooManyAttempts renders the login page for a rate limited POST /login
func (h *AuthHandler) TooManyAttempts(c *fiber.Ctx) error {
	f := view.NewForm(c)
	return h.views.RenderBare(c, fiber.StatusTooManyRequests, "auth/login", "auth.login", fiber.Map{
		"Form":  fiber.Map{"email": f.String("email")},
		"Error": h.views.T(c, "auth.tooManyAttempts"),
	})
}

func (h *AuthHandler) renderLogin(c *fiber.Ctx, values fiber.Map, errs validation.Errors, msg string) error {
	return h.views.RenderBare(c, fiber.StatusUnprocessableEntity, "auth/login", "auth.login", fiber.Map{
		"Form":   values,
		"Errors": errs,
		"Error":  msg,
	})
}

// RegisterPage renders GET /register
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return h.views.RenderBare(c, fiber.StatusOK, "auth/register", "auth.register", fiber.Map{
		"Form":  fiber.Map{"role": session.RolePrep},
		"Roles": []string{session.RolePrep, session.RoleSupervisor, session.RoleManager},
	})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	f := view.NewForm(c)
	form := domain.RegisterForm{
		Name:     f.String("name"),
		Email:    f.String("email"),
		Password: f.Raw("password"),
		Role:     f.String("role"),
	}
	values := fiber.Map{"name": form.Name, "email": form.Email, "role": form.Role}

	render := func(errs validation.Errors, msg string) error {
		return h.views.RenderBare(c, fiber.StatusUnprocessableEntity, "auth/register", "auth.register", fiber.Map{
			"Form":   values,
			"Errors": errs,
			"Error":  msg,
			"Roles":  []string{session.RolePrep, session.RoleSupervisor, session.RoleManager},
		})
	}

	if errs := f.Invalid(h.validator, form); errs != nil {
		return render(errs, "")
	}

	res, err := h.registerHandler.Handle(c.UserContext(), command.RegisterCommand{Form: form})
	if err != nil {
		errs, _ := validation.AsErrors(err)
		return render(errs, apiclient.Message(err, h.views.T(c, "errors.unexpected")))
	}

	h.signIn(c, res, false)
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (h *AuthHandler) signIn(c *fiber.Ctx, res *domain.AuthResult, rememberMe bool) {
	s := session.FromCtx(c)
	h.sessions.Regenerate(c, s)
	s.SignIn(res.Token, res.User.Principal(), rememberMe)
	preferences.Restore(c.UserContext(), h.prefs, s)
	h.metrics.LoggedIn()
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	s := session.FromCtx(c)
	if s.User != nil {
		h.effects.Committed(c.UserContext(), domain.EventLoggedOut, "user", s.User.ID)
		h.metrics.LoggedOut()
	}
	s.SignOut()
	h.sessions.Regenerate(c, s)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// Profile renders GET /profile and refreshes the session user from /auth/me.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	u, err := h.meHandler.Handle(c.UserContext(), query.MeQuery{})
	if err != nil {
		return err
	}
	h.refreshUser(c, u)
	return h.renderProfile(c, fiber.StatusOK, fiber.Map{"name": u.Name, "email": u.Email, "phone": u.Phone}, nil, "", "")
}

// UpdateProfile handles POST /profile
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	f := view.NewForm(c)
	form := domain.ProfileForm{Name: f.String("name"), Email: f.String("email"), Phone: f.String("phone")}
	values := fiber.Map{"name": form.Name, "email": form.Email, "phone": form.Phone}

	if errs := f.Invalid(h.validator, form); errs != nil {
		return h.renderProfile(c, fiber.StatusUnprocessableEntity, values, errs, "", "")
	}

	u, err := h.updateProfileHandler.Handle(c.UserContext(), command.UpdateProfileCommand{Form: form})
	if err != nil {
		msg, fields, fatal := view.Failure(err, h.views.T(c, "errors.unexpected"))
		if fatal != nil {
			return fatal
		}
		return h.renderProfile(c, fiber.StatusUnprocessableEntity, values, fields, msg, "")
	}

	h.refreshUser(c, u)
	return view.Redirect(c, "/profile", "common.saved")
}

// ChangePassword handles POST /profile/password
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	f := view.NewForm(c)
	form := domain.PasswordForm{
		CurrentPassword: f.Raw("currentPassword"),
		NewPassword:     f.Raw("newPassword"),
		ConfirmPassword: f.Raw("confirmPassword"),
	}

	var values fiber.Map
	if s := session.FromCtx(c); s.User != nil {
		values = fiber.Map{"name": s.User.Name, "email": s.User.Email}
	}

	if errs := f.Invalid(h.validator, form); errs != nil {
		return h.renderProfile(c, fiber.StatusUnprocessableEntity, values, errs, "", "")
	}

	if err := h.changePasswordHandler.Handle(c.UserContext(), command.ChangePasswordCommand{Form: form}); err != nil {
		msg, fields, fatal := view.Failure(err, h.views.T(c, "errors.unexpected"))
		if fatal != nil {
			return fatal
		}
		return h.renderProfile(c, fiber.StatusUnprocessableEntity, values, fields, "", msg)
	}
	return view.Redirect(c, "/profile", "auth.passwordChanged")
}

func (h *AuthHandler) refreshUser(c *fiber.Ctx, u *domain.AuthUser) {
	s := session.FromCtx(c)
	if s.User == nil {
		return
	}
	p := u.Principal()
	if p.ID == "" {
		p.ID = s.User.ID
	}
	if p.Role == "" {
		p.Role = s.User.Role
	}
	if *s.User != p {
		s.SetUser(p)
	}
}

func (h *AuthHandler) renderProfile(c *fiber.Ctx, status int, values fiber.Map, errs validation.Errors, profileErr, passwordErr string) error {
	return h.views.Render(c, status, "auth/profile", "common.profile", fiber.Map{
		"Form":          values,
		"Errors":        errs,
		"Error":         profileErr,
		"PasswordError": passwordErr,
	})
}
