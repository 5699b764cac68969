package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/auth"
	"github.com/Nawaf-Almansour/prep-manger/internal/category"
	"github.com/Nawaf-Almansour/prep-manger/internal/config"
	"github.com/Nawaf-Almansour/prep-manger/internal/dashboard"
	"github.com/Nawaf-Almansour/prep-manger/internal/inventory"
	"github.com/Nawaf-Almansour/prep-manger/internal/metrics"
	"github.com/Nawaf-Almansour/prep-manger/internal/mutation"
	"github.com/Nawaf-Almansour/prep-manger/internal/preferences"
	"github.com/Nawaf-Almansour/prep-manger/internal/product"
	"github.com/Nawaf-Almansour/prep-manger/internal/querycache"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/internal/task"
	"github.com/Nawaf-Almansour/prep-manger/internal/user"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
	"github.com/Nawaf-Almansour/prep-manger/internal/web"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/middleware"
	"github.com/Nawaf-Almansour/prep-manger/internal/web/view"
	"github.com/Nawaf-Almansour/prep-manger/kafka"
	"github.com/Nawaf-Almansour/prep-manger/pkg/database"
	"github.com/Nawaf-Almansour/prep-manger/pkg/i18n"
	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
	"github.com/Nawaf-Almansour/prep-manger/pkg/tracing"
)

const loginWindow = time.Minute

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("api", cfg.API.BaseURL).
		Msg("Starting dashboard")

	tp, err := tracing.InitTracer(tracing.Config{
		ServiceName:    cfg.ServiceName,
		JaegerEndpoint: cfg.JaegerEndpoint,
		Environment:    cfg.Environment,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	probes := map[string]web.Probe{}

	// Redis backs sessions, the query cache and the login limiter. Without it
	// everything stays in process memory.
	var (
		sessionStore session.Store      = session.NewMemoryStore()
		cacheBackend querycache.Backend = querycache.NewMemoryBackend()
		limiter      middleware.Limiter = middleware.NewMemoryLimiter(cfg.LoginRateLimit, loginWindow)
	)
	if rdb := connectRedis(ctx, cfg.Redis); rdb != nil {
		defer rdb.Close()
		sessionStore = session.NewRedisStore(rdb)
		cacheBackend = querycache.NewRedisBackend(rdb)
		limiter = middleware.NewRedisLimiter(rdb, cfg.LoginRateLimit, loginWindow)
		probes["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	cache := querycache.New(cacheBackend, cfg.CacheTTL, m)

	// Preferences survive sign-out only when a database is configured.
	var prefs preferences.Repository = preferences.NopRepository{}
	if db := connectDatabase(cfg.Database); db != nil {
		repo := preferences.NewGormRepository(db)
		if err := repo.AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
		prefs = repo
		probes["database"] = func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
	}

	// Kafka
	var activity kafka.ActivityPublisher = kafka.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.ActivityTopic)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Activity events disabled")
		} else {
			defer publisher.Close()
			activity = publisher
		}

		consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, []string{cfg.Kafka.ChangesTopic}, mutation.OnChange(cache))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Change feed disabled")
		} else {
			consumer.Start(ctx)
			defer consumer.Close()
		}
	}

	api := apiclient.New(apiclient.Options{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout, Metrics: m})
	probes["api"] = web.HTTPProbe(&http.Client{Timeout: cfg.API.Timeout}, cfg.API.BaseURL+"/health")

	tr, err := i18n.New(cfg.DefaultLocale)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load translations")
	}
	views := view.NewRenderer(tr, cfg.Location)
	sessions := session.NewManager(sessionStore, session.Options{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.Session.Secure,
	})
	v := validation.New()
	effects := mutation.NewEffects(cache, activity)

	handlers, err := initializeHandlers(api, v, effects, views, sessions, prefs, m, tr)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handlers")
	}

	health := web.NewHealthChecker(cfg.ServiceName, probes)
	app := web.NewServer(web.ServerConfig{
		ServiceName:    cfg.ServiceName,
		AllowedOrigins: cfg.AllowedOrigins,
		Views:          views,
		Sessions:       sessions,
		Preferences:    prefs,
		Metrics:        m,
		Health:         health,
		LoginLimiter:   limiter,
	}, handlers)

	ops := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           web.NewOpsHandler(health, registry, strings.Split(cfg.AllowedOrigins, ",")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("port", cfg.MetricsPort).Str("metrics_endpoint", "/metrics").Msg("Ops server started")
		if err := ops.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error().Err(err).Msg("Ops server failed")
		}
	}()

	go func() {
		logger.Logger.Info().Str("port", cfg.HTTPPort).Msg("HTTP server started")
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			logger.Logger.Error().Err(err).Msg("HTTP server failed")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	if err := ops.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Ops server shutdown failed")
	}
	if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
		logger.Logger.Error().Err(err).Msg("Tracer shutdown failed")
	}
}

// initializeHandlers builds every resource handler. Pages that show data from
// another resource get that resource's query handler.
func initializeHandlers(
	api *apiclient.Client,
	v *validation.Validator,
	effects *mutation.Effects,
	views *view.Renderer,
	sessions *session.Manager,
	prefs preferences.Repository,
	m *metrics.Metrics,
	tr *i18n.Translator,
) (web.Handlers, error) {
	authHandler, err := auth.InitializeHTTPHandler(api, v, effects, views, sessions, prefs, m)
	if err != nil {
		return web.Handlers{}, err
	}
	categoryHandler, err := category.InitializeHTTPHandler(api, v, effects, views)
	if err != nil {
		return web.Handlers{}, err
	}
	userHandler, err := user.InitializeHTTPHandler(api, v, effects, views)
	if err != nil {
		return web.Handlers{}, err
	}
	inventoryHandler, err := inventory.InitializeHTTPHandler(api, v, effects, views, categoryHandler.ListHandler())
	if err != nil {
		return web.Handlers{}, err
	}
	productHandler, err := product.InitializeHTTPHandler(api, v, effects, views, categoryHandler.ListHandler(), inventoryHandler.ListHandler())
	if err != nil {
		return web.Handlers{}, err
	}
	taskHandler, err := task.InitializeHTTPHandler(api, v, effects, views, productHandler.GetHandler(), userHandler.ListHandler())
	if err != nil {
		return web.Handlers{}, err
	}
	dashboardHandler, err := dashboard.InitializeHTTPHandler(api, views, taskHandler.ListHandler(), inventoryHandler.ListHandler())
	if err != nil {
		return web.Handlers{}, err
	}

	return web.Handlers{
		Auth:        authHandler,
		Dashboard:   dashboardHandler,
		Inventory:   inventoryHandler,
		Products:    productHandler,
		Tasks:       taskHandler,
		Categories:  categoryHandler,
		Users:       userHandler,
		Preferences: web.NewPreferencesHandler(prefs, tr.Supported),
	}, nil
}

func connectRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		logger.Logger.Info().Msg("No Redis configured, using in-memory sessions and cache")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", cfg.Addr).Msg("Redis unreachable, using in-memory sessions and cache")
		_ = rdb.Close()
		return nil
	}
	logger.Logger.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")
	return rdb
}

func connectDatabase(cfg database.Config) *gorm.DB {
	if !cfg.Enabled() {
		logger.Logger.Info().Msg("No database configured, preferences are kept in the session only")
		return nil
	}
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Database unreachable, preferences are kept in the session only")
		return nil
	}
	return db
}
