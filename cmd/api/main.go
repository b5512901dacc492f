package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/itemvault/docs/swagger"
	migrations "github.com/ghuser/itemvault/migrations/item"
	"github.com/ghuser/itemvault/pkg/app"
	"github.com/ghuser/itemvault/pkg/cache"
	"github.com/ghuser/itemvault/pkg/config"
	"github.com/ghuser/itemvault/pkg/database"
	"github.com/ghuser/itemvault/pkg/events"
	"github.com/ghuser/itemvault/pkg/httpx"
	"github.com/ghuser/itemvault/pkg/logger"
	"github.com/ghuser/itemvault/pkg/migrator"
	"github.com/ghuser/itemvault/pkg/telemetry"
	itemApi "github.com/ghuser/itemvault/services/item/application/api"
	"github.com/ghuser/itemvault/services/item/domain/repositories"
	pgstore "github.com/ghuser/itemvault/services/item/infrastructure/persistence/postgres"
	sqlitestore "github.com/ghuser/itemvault/services/item/infrastructure/persistence/sqlite"
)

// @title			ItemVault API
// @version		1.0
// @description	Item lifecycle service with age-gated deletion.
// @host			localhost:8080
// @BasePath		/api
// @schemes		http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	// Store: embedded sqlite by default, postgres when configured. The
	// handle is acquired once here and held for the process lifetime.
	var (
		repo       repositories.ItemRepository
		storeCheck httpx.HealthChecker
		eventBus   *events.EventBus
	)
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer pool.Close()
		log.Info("database pool connected")

		if err := migrator.RunPostgres(cfg.DatabaseURL, migrations.FS, migrations.PostgresDir); err != nil {
			log.Error("failed to run migrations", "error", err)
			os.Exit(1) //nolint:gocritic
		}

		eventBus, err = events.NewEventBus(cfg, log)
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer eventBus.Close() //nolint:errcheck

		pgRepo := pgstore.NewItemRepository(pool, eventBus)
		repo, storeCheck = pgRepo, pgRepo

	default:
		sqlRepo, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			log.Error("failed to open sqlite store", "error", err, "path", cfg.SQLitePath)
			os.Exit(1) //nolint:gocritic
		}
		defer sqlRepo.Close() //nolint:errcheck
		log.Info("sqlite store opened", "path", cfg.SQLitePath)

		if err := migrator.Run(sqlRepo.DB(), "sqlite3", migrations.FS, migrations.SQLiteDir); err != nil {
			log.Error("failed to run migrations", "error", err)
			os.Exit(1) //nolint:gocritic
		}

		repo, storeCheck = sqlRepo, sqlRepo
	}

	var redisClient *cache.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Warn("failed to connect to redis, continuing without cache", "error", err)
		} else {
			defer redisClient.Close() //nolint:errcheck
			log.Info("redis connected")
		}
	}

	appConfig := &app.Application{
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	healthChecks := httpx.HealthChecks{Store: storeCheck}
	if redisClient != nil {
		healthChecks.Redis = redisClient
	}
	if eventBus != nil {
		healthChecks.EventBus = eventBus
	}
	r.Get("/health", httpx.HealthHandler(healthChecks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		itemApi.ItemRoutes(r, appConfig, repo)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
