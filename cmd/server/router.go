package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/planroom/teamplan-api/internal/api/middleware"
)

// setupRouter wires every HTTP route. Auth endpoints are public; everything
// else requires a valid access token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)
	r.Use(middleware.MetricsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", app.authHandler.SignUp)
		r.Post("/auth/login", app.authHandler.Login)
		r.Post("/auth/refresh", app.authHandler.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(app.authMiddleware.Authenticate)

			r.Put("/users/{id}/role", app.authHandler.UpdateUserRole)
			r.Delete("/users/{id}", app.authHandler.DeleteUser)

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", app.projectHandler.Create)
				r.Get("/", app.projectHandler.List)
				r.Get("/{id}", app.projectHandler.Get)
				r.Put("/{id}", app.projectHandler.Update)
				r.Delete("/{id}", app.projectHandler.Delete)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", app.taskHandler.Create)
				r.Get("/", app.taskHandler.List)
				r.Get("/{id}", app.taskHandler.Get)
				r.Put("/{id}", app.taskHandler.Update)
				r.Delete("/{id}", app.taskHandler.Delete)
			})

			r.Route("/milestones", func(r chi.Router) {
				r.Post("/", app.milestoneHandler.Create)
				r.Get("/", app.milestoneHandler.List)
				r.Get("/{id}", app.milestoneHandler.Get)
				r.Put("/{id}", app.milestoneHandler.Update)
				r.Delete("/{id}", app.milestoneHandler.Delete)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Post("/", app.notificationHandler.Create)
				r.Get("/", app.notificationHandler.List)
				r.Get("/{id}", app.notificationHandler.Get)
				r.Put("/{id}", app.notificationHandler.MarkRead)
				r.Delete("/{id}", app.notificationHandler.Delete)
			})
		})
	})

	return r
}
