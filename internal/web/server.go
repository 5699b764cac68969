package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/Nawaf-Almansour/prep-manger/internal/metrics"
	"github.com/Nawaf-Almansour/prep-manger/internal/preferences"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/middleware"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
)

// ServerConfig is what the app needs beyond the handlers.
type ServerConfig struct {
	ServiceName    string
	AllowedOrigins string
	Views          *view.Renderer
	Sessions       *session.Manager
	Preferences    preferences.Repository
	Metrics        *metrics.Metrics
	Health         *HealthChecker
	LoginLimiter   middleware.Limiter
	Now            func() time.Time
}

// NewServer builds the Fiber app with its middleware chain and routes.
func NewServer(cfg ServerConfig, h Handlers) *fiber.App {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	app := fiber.New(fiber.Config{
		AppName:      "Prep Manager Dashboard",
		Views:        cfg.Views.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    8 << 20,
		ErrorHandler: ErrorHandler(cfg.Views, cfg.Sessions, cfg.Metrics),
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New())
	app.Use(middleware.Tracing(cfg.ServiceName))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,HEAD,OPTIONS",
		AllowCredentials: cfg.AllowedOrigins != "*",
		ExposeHeaders:    "X-Request-Id, X-Trace-Id, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset",
		MaxAge:           86400,
	}))
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	// The session is saved after the error handler has run inside
	// RequestLogging, so a 401 that signs out is written back.
	app.Use(cfg.Sessions.Middleware())
	app.Use(middleware.SessionContext(cfg.Now))
	app.Use(middleware.RequestLogging(cfg.Metrics))
	app.Use(middleware.Locale(cfg.Views.Translator(), cfg.Preferences))

	SetupRoutes(app, h, cfg.Health, cfg.LoginLimiter)
	return app
}
