package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/api/shared"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// TaskHandler handles the plain task CRUD passthrough family. Nothing
// here ever creates a notification; the assignment-notifying creation
// path lives in NotificationHandler and the two are deliberately
// separate entry points.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With("component", "task_handler"),
	}
}

// CreateTask handles POST /task.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task := domain.NewTask(
		req.Title,
		req.Description,
		req.DueDate,
		req.Priority,
		req.Status,
		req.AssignedEmail,
		req.UserEmail,
	)

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, TaskCreatedResponse{InsertedID: task.ID})
}

// ListTasks handles GET /tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// UpdateTask handles PUT /task/{id}. It replaces the fixed field set of
// the addressed task. Unknown IDs produce 404, never a zero-count
// success body.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task := &domain.Task{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		DueDate:       req.DueDate,
		Priority:      req.Priority,
		Status:        req.Status,
		AssignedEmail: req.AssignedEmail,
		UserEmail:     req.UserEmail,
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MutationResponse{Acknowledged: true, ModifiedCount: 1})
}

// DeleteTask handles DELETE /task/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MutationResponse{Acknowledged: true, ModifiedCount: 1})
}

// getPathUUID extracts a UUID from the URL path parameters.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}
