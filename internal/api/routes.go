package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/shelf-api/internal/api/middleware"
)

// Routes builds the /api subtree for books and users.
func Routes(books *BookHandler, users *UserHandler, authMiddleware *middleware.AuthMiddleware) chi.Router {
	r := chi.NewRouter()

	r.Route("/books", func(r chi.Router) {
		r.Get("/", books.List)
		r.Post("/create-book", books.Create)
		r.Get("/{bookID}", books.Get)
		r.With(books.AttachBook()).Put("/{bookID}", books.Update)
		r.Delete("/{bookID}", books.Delete)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/signup", users.Signup)
		r.Post("/login", users.Login)
		r.Post("/logout", users.Logout)
		r.Get("/{userID}", users.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/", users.List)
			r.Put("/{userID}", users.Update)
			r.Delete("/{userID}", users.Delete)
		})
	})

	return r
}
