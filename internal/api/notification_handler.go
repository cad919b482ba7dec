package api

import (
	"log/slog"
	"net/http"

	"github.com/taskflowhq/taskflow-api/internal/api/shared"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/service"
)

// NotificationHandler handles the assignment-notifying task creation
// path and the notification read endpoints.
type NotificationHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewNotificationHandler creates a new NotificationHandler with the given dependencies.
func NewNotificationHandler(taskService service.TaskService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		taskService: taskService,
		logger:      logger.With("component", "notification_handler"),
	}
}

// CreateAssignedTask handles POST /notifications/{email}.
//
// The body's assignedEmail field decides whether a notification is
// materialized; the path segment is routing sugar and carries no
// semantics of its own. Task and notification are written in one
// transaction, so the response's notified flag is authoritative.
func (h *NotificationHandler) CreateAssignedTask(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.taskService.CreateAssignedTask(r.Context(), task)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, result)
}

// ListNotifications handles GET /notifications?email=.
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	receiverEmail := r.URL.Query().Get("email")

	notifications, err := h.taskService.ListNotifications(r.Context(), receiverEmail)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, notifications)
}

// MarkRead handles PUT /notification/{id}.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.MarkNotificationRead(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MutationResponse{Acknowledged: true, ModifiedCount: 1})
}
