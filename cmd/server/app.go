package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/shelf-api/internal/api"
	apiMiddleware "github.com/phrazzld/shelf-api/internal/api/middleware"
	"github.com/phrazzld/shelf-api/internal/config"
	"github.com/phrazzld/shelf-api/internal/platform/postgres"
	"github.com/phrazzld/shelf-api/internal/service"
	"github.com/phrazzld/shelf-api/internal/service/auth"
	"github.com/phrazzld/shelf-api/internal/store"
	"github.com/phrazzld/shelf-api/internal/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores
	bookStore store.BookStore
	userStore store.UserStore

	// Service interfaces
	jwtService  auth.JWTService
	hasher      auth.PasswordHasher
	bookService service.BookService
	userService service.UserService

	// HTTP plumbing
	registry    *prometheus.Registry
	metrics     *apiMiddleware.Metrics
	rateLimiter *apiMiddleware.RateLimiter
}

// newApplication creates the application backed by PostgreSQL stores on db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app, err := buildApplication(
		cfg,
		logger,
		postgres.NewPostgresBookStore(db, logger),
		postgres.NewPostgresUserStore(db, logger),
	)
	if err != nil {
		return nil, err
	}

	app.db = db
	app.registry.MustRegister(collectors.NewDBStatsCollector(db, "shelf"))
	return app, nil
}

// buildApplication wires services and HTTP plumbing around the given stores.
func buildApplication(
	cfg *config.Config,
	logger *slog.Logger,
	bookStore store.BookStore,
	userStore store.UserStore,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		bookStore: bookStore,
		userStore: userStore,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.hasher = auth.NewBcryptHasher(cfg.Auth.BCryptCost)

	v := validation.New()
	app.bookService = service.NewBookService(bookStore, v, logger)
	app.userService = service.NewUserService(userStore, app.hasher, app.jwtService, v, logger)

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = apiMiddleware.NewMetrics(app.registry)

	if cfg.RateLimit.Enabled {
		app.rateLimiter = apiMiddleware.NewRateLimiter(apiMiddleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
			Burst: cfg.RateLimit.Burst,
		})
		logger.Info("Rate limiting enabled",
			"requests_per_second", cfg.RateLimit.RequestsPerSecond,
			"burst", cfg.RateLimit.Burst)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) responsePolicy() api.ResponsePolicy {
	return api.PolicyFromConfig(app.config.API)
}

func (app *application) shutdownTimeout() time.Duration {
	return time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.rateLimiter != nil {
		app.rateLimiter.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
