package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/taskflowhq/taskflow-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)
	r.Use(apiMiddleware.CORS(app.config.CORS.Origins()))

	// Session credential endpoints
	r.Post("/jwt", app.authHandler.IssueToken)
	r.Post("/logout", app.authHandler.Logout)
	r.Get("/verify", app.authHandler.Verify)

	// User endpoints
	r.Post("/user", app.userHandler.Register)
	r.Get("/users", app.userHandler.ListUsers)

	// Plain task CRUD (never notifies)
	r.Post("/task", app.taskHandler.CreateTask)
	r.Get("/tasks", app.taskHandler.ListTasks)
	r.Put("/task/{id}", app.taskHandler.UpdateTask)
	r.Delete("/task/{id}", app.taskHandler.DeleteTask)

	// Assignment-notifying creation and notification read state
	r.Post("/notifications/{email}", app.notificationHandler.CreateAssignedTask)
	r.Get("/notifications", app.notificationHandler.ListNotifications)
	r.Put("/notification/{id}", app.notificationHandler.MarkRead)

	// Liveness endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Welcome to TaskFlow server")); err != nil {
			app.logger.Error("failed to write liveness response", "error", err)
		}
	})

	return r
}
