package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow-api/internal/api"
	"github.com/taskflowhq/taskflow-api/internal/config"
	"github.com/taskflowhq/taskflow-api/internal/mocks"
	"github.com/taskflowhq/taskflow-api/internal/service"
	"github.com/taskflowhq/taskflow-api/internal/service/auth"
)

// newTestApplication assembles an application over in-memory stores,
// close enough to the real wiring to exercise the route table.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	db := mocks.NewDB()
	t.Cleanup(func() { _ = db.Close() })

	userStore := mocks.NewMemoryUserStore()
	taskStore := mocks.NewMemoryTaskStore()
	notificationStore := mocks.NewMemoryNotificationStore()

	tokenService, err := auth.NewTokenService("test-signing-secret-0123456789abcdef")
	require.NoError(t, err)
	registrationService := service.NewRegistrationService(userStore, db, log)
	taskService := service.NewTaskService(taskStore, notificationStore, db, log)

	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "error", ShutdownTimeout: 5},
			CORS:   config.CORSConfig{AllowedOrigins: "http://localhost:3000"},
		},
		logger:              log,
		authHandler:         api.NewAuthHandler(tokenService, log),
		userHandler:         api.NewUserHandler(registrationService, userStore, log),
		taskHandler:         api.NewTaskHandler(taskStore, log),
		notificationHandler: api.NewNotificationHandler(taskService, log),
	}
}

func TestRouterLiveness(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to TaskFlow server", w.Body.String())
}

func TestRouterRouteTable(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	// Every route must be registered; unknown paths fall through to 404.
	cases := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/jwt"},
		{http.MethodPost, "/logout"},
		{http.MethodGet, "/verify"},
		{http.MethodPost, "/user"},
		{http.MethodGet, "/users"},
		{http.MethodPost, "/task"},
		{http.MethodGet, "/tasks"},
		{http.MethodPut, "/task/00000000-0000-0000-0000-000000000001"},
		{http.MethodDelete, "/task/00000000-0000-0000-0000-000000000001"},
		{http.MethodPost, "/notifications/a@x.com"},
		{http.MethodGet, "/notifications?email=a@x.com"},
		{http.MethodPut, "/notification/00000000-0000-0000-0000-000000000001"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEqual(t, http.StatusMethodNotAllowed, w.Code,
			"%s %s must be routed", tc.method, tc.target)
		if w.Code == http.StatusNotFound {
			// 404 here must come from a handler (unknown entity), never
			// from the router itself.
			assert.Contains(t, w.Body.String(), "error",
				"%s %s must reach a handler", tc.method, tc.target)
		}
	}

	unknown := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, unknown)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
