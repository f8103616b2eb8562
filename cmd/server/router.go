package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/shelf-api/internal/api"
	apiMiddleware "github.com/phrazzld/shelf-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(app.metrics.Middleware)

	bookHandler := api.NewBookHandler(app.bookService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.responsePolicy(), app.config.Auth.CookieSecure, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Group(func(r chi.Router) {
		if app.rateLimiter != nil {
			r.Use(app.rateLimiter.Middleware)
		}
		r.Mount("/api", api.Routes(bookHandler, userHandler, authMiddleware))
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", apiMiddleware.MetricsHandler(app.registry))

	return r
}
