package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/taskflowhq/taskflow-api/internal/api"
	"github.com/taskflowhq/taskflow-api/internal/mocks"
	"github.com/taskflowhq/taskflow-api/internal/service"
	"github.com/taskflowhq/taskflow-api/internal/service/auth"
)

const testTokenSecret = "test-signing-secret-0123456789abcdef"

// testEnv bundles the stores and router backing a handler test, so
// assertions can reach past the HTTP surface into the stored state.
type testEnv struct {
	router            chi.Router
	userStore         *mocks.MemoryUserStore
	taskStore         *mocks.MemoryTaskStore
	notificationStore *mocks.MemoryNotificationStore
	timeFunc          func() time.Time
}

// newTestEnv wires handlers over in-memory stores and mounts them on
// the same routes the real router uses.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		userStore:         mocks.NewMemoryUserStore(),
		taskStore:         mocks.NewMemoryTaskStore(),
		notificationStore: mocks.NewMemoryNotificationStore(),
		timeFunc:          time.Now,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	db := mocks.NewDB()
	t.Cleanup(func() { _ = db.Close() })

	tokenService := auth.NewTestTokenService(testTokenSecret, func() time.Time {
		return env.timeFunc()
	})
	registrationService := service.NewRegistrationService(env.userStore, db, logger)
	taskService := service.NewTaskService(env.taskStore, env.notificationStore, db, logger)

	authHandler := api.NewAuthHandler(tokenService, logger)
	userHandler := api.NewUserHandler(registrationService, env.userStore, logger)
	taskHandler := api.NewTaskHandler(env.taskStore, logger)
	notificationHandler := api.NewNotificationHandler(taskService, logger)

	r := chi.NewRouter()
	r.Post("/jwt", authHandler.IssueToken)
	r.Post("/logout", authHandler.Logout)
	r.Get("/verify", authHandler.Verify)
	r.Post("/user", userHandler.Register)
	r.Get("/users", userHandler.ListUsers)
	r.Post("/task", taskHandler.CreateTask)
	r.Get("/tasks", taskHandler.ListTasks)
	r.Put("/task/{id}", taskHandler.UpdateTask)
	r.Delete("/task/{id}", taskHandler.DeleteTask)
	r.Post("/notifications/{email}", notificationHandler.CreateAssignedTask)
	r.Get("/notifications", notificationHandler.ListNotifications)
	r.Put("/notification/{id}", notificationHandler.MarkRead)

	env.router = r
	return env
}

// do executes a request against the test router and returns the recorder.
func (env *testEnv) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded JSON response body into out.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
}
