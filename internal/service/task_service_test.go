package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/mocks"
	"github.com/taskflowhq/taskflow-api/internal/service"
	"github.com/taskflowhq/taskflow-api/internal/store"
)

func newTaskService(t *testing.T) (service.TaskService, *mocks.MemoryTaskStore, *mocks.MemoryNotificationStore) {
	t.Helper()
	taskStore := mocks.NewMemoryTaskStore()
	notificationStore := mocks.NewMemoryNotificationStore()
	svc := service.NewTaskService(taskStore, notificationStore, mocks.NewDB(), testLogger())
	return svc, taskStore, notificationStore
}

func TestCreateAssignedTask(t *testing.T) {
	t.Parallel()

	t.Run("with assignee creates exactly one notification", func(t *testing.T) {
		t.Parallel()
		svc, taskStore, notificationStore := newTaskService(t)

		task := domain.NewTask("Review PR", "review the storage PR", "2026-09-01", "high", "todo", "a@x.com", "owner@x.com")
		result, err := svc.CreateAssignedTask(context.Background(), task)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, task.ID, result.TaskID)
		assert.True(t, result.Notified)

		_, ok := taskStore.Get(task.ID)
		assert.True(t, ok)

		notifications := notificationStore.All()
		require.Len(t, notifications, 1)
		n := notifications[0]
		assert.Equal(t, "a@x.com", n.ReceiverEmail)
		assert.Equal(t, task.ID, n.TaskID)
		assert.False(t, n.IsRead)
		assert.Contains(t, n.Message, "Review PR")
	})

	t.Run("without assignee creates no notification", func(t *testing.T) {
		t.Parallel()
		svc, taskStore, notificationStore := newTaskService(t)

		task := domain.NewTask("Solo task", "", "", "low", "todo", "", "owner@x.com")
		result, err := svc.CreateAssignedTask(context.Background(), task)
		require.NoError(t, err)

		assert.False(t, result.Notified)
		_, ok := taskStore.Get(task.ID)
		assert.True(t, ok)
		assert.Empty(t, notificationStore.All())
	})

	t.Run("task store failure surfaces and skips notification", func(t *testing.T) {
		t.Parallel()
		svc, taskStore, notificationStore := newTaskService(t)
		taskStore.CreateErr = errors.New("insert failed")

		task := domain.NewTask("Doomed", "", "", "", "", "a@x.com", "owner@x.com")
		_, err := svc.CreateAssignedTask(context.Background(), task)
		require.Error(t, err)
		assert.Empty(t, notificationStore.All())
	})

	t.Run("notification store failure surfaces", func(t *testing.T) {
		t.Parallel()
		svc, _, notificationStore := newTaskService(t)
		notificationStore.CreateErr = errors.New("insert failed")

		task := domain.NewTask("Doomed", "", "", "", "", "a@x.com", "owner@x.com")
		_, err := svc.CreateAssignedTask(context.Background(), task)
		require.Error(t, err)
		assert.ErrorContains(t, err, "assignment notification")
	})
}

func TestListNotifications(t *testing.T) {
	t.Parallel()

	t.Run("orders newest first", func(t *testing.T) {
		t.Parallel()
		svc, _, notificationStore := newTaskService(t)

		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		var ids []uuid.UUID
		for i := 0; i < 3; i++ {
			n := &domain.Notification{
				ID:            uuid.New(),
				ReceiverEmail: "a@x.com",
				Message:       "m",
				TaskID:        uuid.New(),
				CreatedAt:     base.Add(time.Duration(i) * time.Minute),
			}
			require.NoError(t, notificationStore.Create(context.Background(), n))
			ids = append(ids, n.ID)
		}

		got, err := svc.ListNotifications(context.Background(), "a@x.com")
		require.NoError(t, err)
		require.Len(t, got, 3)

		// Created at t1 < t2 < t3, returned as [t3, t2, t1].
		assert.Equal(t, ids[2], got[0].ID)
		assert.Equal(t, ids[1], got[1].ID)
		assert.Equal(t, ids[0], got[2].ID)
	})

	t.Run("filters by receiver", func(t *testing.T) {
		t.Parallel()
		svc, _, notificationStore := newTaskService(t)

		for _, email := range []string{"a@x.com", "b@x.com", "a@x.com"} {
			n := &domain.Notification{ID: uuid.New(), ReceiverEmail: email, TaskID: uuid.New(), CreatedAt: time.Now().UTC()}
			require.NoError(t, notificationStore.Create(context.Background(), n))
		}

		got, err := svc.ListNotifications(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("missing receiver email is a validation error", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTaskService(t)

		_, err := svc.ListNotifications(context.Background(), "  ")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestMarkNotificationRead(t *testing.T) {
	t.Parallel()

	t.Run("idempotent across repeated calls", func(t *testing.T) {
		t.Parallel()
		svc, _, notificationStore := newTaskService(t)

		n := &domain.Notification{ID: uuid.New(), ReceiverEmail: "a@x.com", TaskID: uuid.New(), CreatedAt: time.Now().UTC()}
		require.NoError(t, notificationStore.Create(context.Background(), n))

		require.NoError(t, svc.MarkNotificationRead(context.Background(), n.ID))
		require.NoError(t, svc.MarkNotificationRead(context.Background(), n.ID))

		all := notificationStore.All()
		require.Len(t, all, 1)
		assert.True(t, all[0].IsRead)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTaskService(t)

		err := svc.MarkNotificationRead(context.Background(), uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrNotificationNotFound)
	})
}
