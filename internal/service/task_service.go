package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

// AssignedTaskResult reports the outcome of an assignment-notifying task
// creation: the new task's identifier and whether a notification was
// materialized for an assignee.
type AssignedTaskResult struct {
	TaskID   uuid.UUID `json:"taskId"`
	Notified bool      `json:"notified"`
}

// TaskService implements the task assignment and notification engine.
//
// Only CreateAssignedTask produces notifications. The plain task CRUD
// family goes straight to the TaskStore and must never reach this path;
// the two entry points are deliberately distinct.
type TaskService interface {
	// CreateAssignedTask persists the task and, if and only if the task
	// names an assignee, a matching assignment notification. Both writes
	// happen in one transaction: either the task and its notification
	// both exist afterwards, or neither does.
	CreateAssignedTask(ctx context.Context, task *domain.Task) (*AssignedTaskResult, error)

	// ListNotifications returns all notifications for the receiver,
	// newest first. Returns a validation error when the receiver email
	// is absent.
	ListNotifications(ctx context.Context, receiverEmail string) ([]domain.Notification, error)

	// MarkNotificationRead flips the notification's read flag. Marking
	// an already-read notification succeeds without change. Returns
	// store.ErrNotificationNotFound for an unknown ID.
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore         store.TaskStore
	notificationStore store.NotificationStore
	db                *sql.DB
	logger            *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskStore store.TaskStore,
	notificationStore store.NotificationStore,
	db *sql.DB,
	logger *slog.Logger,
) TaskService {
	return &TaskServiceImpl{
		taskStore:         taskStore,
		notificationStore: notificationStore,
		db:                db,
		logger:            logger.With("component", "task_service"),
	}
}

// CreateAssignedTask implements TaskService.CreateAssignedTask.
func (s *TaskServiceImpl) CreateAssignedTask(ctx context.Context, task *domain.Task) (*AssignedTaskResult, error) {
	result := &AssignedTaskResult{TaskID: task.ID}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.taskStore.WithTx(tx).Create(ctx, task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		if !task.HasAssignee() {
			return nil
		}

		notification := domain.NewAssignmentNotification(task)
		if err := s.notificationStore.WithTx(tx).Create(ctx, notification); err != nil {
			return fmt.Errorf("failed to create assignment notification: %w", err)
		}
		result.Notified = true
		return nil
	})
	if err != nil {
		s.logger.Error("failed to create assigned task",
			"task_id", task.ID,
			"error", err)
		return nil, err
	}

	s.logger.Info("assigned task created",
		"task_id", task.ID,
		"notified", result.Notified)

	return result, nil
}

// ListNotifications implements TaskService.ListNotifications.
func (s *TaskServiceImpl) ListNotifications(ctx context.Context, receiverEmail string) ([]domain.Notification, error) {
	if strings.TrimSpace(receiverEmail) == "" {
		return nil, domain.ErrEmptyReceiverEmail
	}

	notifications, err := s.notificationStore.ListByReceiver(ctx, receiverEmail)
	if err != nil {
		s.logger.Error("failed to list notifications", "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// MarkNotificationRead implements TaskService.MarkNotificationRead.
func (s *TaskServiceImpl) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	if err := s.notificationStore.MarkRead(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("mark read on unknown notification", "notification_id", id)
			return err
		}
		s.logger.Error("failed to mark notification read",
			"notification_id", id,
			"error", err)
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
