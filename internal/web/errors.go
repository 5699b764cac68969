package web

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/metrics"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

// ErrorHandler renders failed requests. An upstream 401 drops the token, keeps
// the UI preferences and sends the browser to /login; everything else becomes
// an error page, or JSON for /api and /health paths.
func ErrorHandler(views *view.Renderer, sessions *session.Manager, m *metrics.Metrics) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			if s := session.FromCtx(c); s != nil {
				if s.User != nil {
					m.LoggedOut()
				}
				s.SignOut()
				sessions.Regenerate(c, s)
			}
			if wantsJSON(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized", "statusCode": fiber.StatusUnauthorized})
			}
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		code := fiber.StatusInternalServerError
		message := ""
		var fe *fiber.Error
		var apiErr *apiclient.APIError
		switch {
		case errors.As(err, &fe):
			code = fe.Code
			switch code {
			case fiber.StatusForbidden:
				message = views.T(c, "errors.forbidden")
			case fiber.StatusNotFound:
				message = views.T(c, "errors.notFound")
			default:
				message = fe.Message
			}
		case errors.As(err, &apiErr):
			code = upstreamStatus(apiErr.StatusCode)
			message = apiErr.Message
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error(c.UserContext()).Err(err).Str("path", c.Path()).Msg("Request failed")
		}

		if wantsJSON(c) {
			return c.Status(code).JSON(fiber.Map{
				"error":      err.Error(),
				"statusCode": code,
				"path":       c.Path(),
				"method":     c.Method(),
				"requestId":  c.GetRespHeader(fiber.HeaderXRequestID),
			})
		}

		if message == "" || code >= fiber.StatusInternalServerError {
			message = views.T(c, "errors.unexpected")
		}
		renderErr := views.RenderBare(c, code, "error", "errors.title", fiber.Map{
			"Code":    code,
			"Message": message,
		})
		if renderErr != nil {
			logger.Error(c.UserContext()).Err(renderErr).Msg("Failed to render error page")
			return c.Status(code).SendString(message)
		}
		return nil
	}
}

// upstreamStatus keeps the API's client errors (404, 403) and reports its
// failures as a bad gateway.
func upstreamStatus(status int) int {
	if status >= 400 && status < 500 {
		return status
	}
	return fiber.StatusBadGateway
}

func wantsJSON(c *fiber.Ctx) bool {
	path := c.Path()
	return strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/health")
}
