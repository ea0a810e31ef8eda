package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/directory-api/internal/api"
	apiMiddleware "github.com/phrazzld/directory-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's stores
	userHandler := api.NewUserHandler(app.userStore, app.logger)
	postHandler := api.NewPostHandler(app.postStore, app.userStore, app.logger)

	// Register routes
	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Get("/count", userHandler.CountUsers)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", postHandler.ListPosts)
		r.Post("/", postHandler.CreatePost)
		r.Delete("/{id}", postHandler.DeletePost)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
